package expense

import (
	"context"

	"fuelstation-backend/internal/models"
)

// Repository is the persistence the expense lifecycle needs. Transaction
// runs fn with a Repository bound to one database transaction.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	GetShiftData(ctx context.Context, id uint) (models.ShiftData, error)
	GetShift(ctx context.Context, id uint) (models.Shift, error)
	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id uint) (models.Expense, error)
	SaveExpense(ctx context.Context, e *models.Expense) error
	ListExpensesByShiftData(ctx context.Context, shiftDataID uint) ([]models.Expense, error)
	ListExpensesByStatus(ctx context.Context, status models.ExpenseStatus) ([]models.Expense, error)
	SetExpensesTotal(ctx context.Context, shiftDataID uint, total float64) error
	AppendAudit(ctx context.Context, entry models.AuditLog) error
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
