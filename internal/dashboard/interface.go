package dashboard

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	ListShifts(ctx context.Context, branchID uint) ([]models.Shift, error)
	ListShiftsSince(ctx context.Context, branchID uint, from time.Time) ([]models.Shift, error)
	ListShiftDataByShifts(ctx context.Context, shiftIDs []uint) ([]models.ShiftData, error)
	ListExpensesByShiftDataIDs(ctx context.Context, ids []uint) ([]models.Expense, error)
}
