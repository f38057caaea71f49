package importer

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

// Repository is the persistence an import needs. Transaction runs fn with a
// Repository bound to one database transaction; each (branch, date, shift
// time) group is written inside its own.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	ListAttendants(ctx context.Context, branchID uint) ([]models.Attendant, error)
	CreateAttendant(ctx context.Context, a *models.Attendant) error
	FindOpenShift(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) (models.Shift, error)
	CreateShift(ctx context.Context, sh *models.Shift) error
	CreateShiftData(ctx context.Context, r *models.ShiftData) error
	CreateExpense(ctx context.Context, e *models.Expense) error
	CreateCashReport(ctx context.Context, r *models.CashAnalysisReport) error
	AppendAudit(ctx context.Context, entry models.AuditLog) error
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}

// PriceLookup resolves a default price per liter for a pump label.
type PriceLookup interface {
	PriceFor(pumpProduct string) (float64, bool)
}
