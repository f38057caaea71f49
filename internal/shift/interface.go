package shift

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

// Repository is the persistence the shift service needs; *store.Store
// implements it.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	GetBranch(ctx context.Context, id uint) (models.Branch, error)
	GetShift(ctx context.Context, id uint) (models.Shift, error)
	FindOpenShift(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) (models.Shift, error)
	LatestOpenShift(ctx context.Context, branchID uint) (models.Shift, error)
	CreateShift(ctx context.Context, sh *models.Shift) error
	SaveShift(ctx context.Context, sh *models.Shift) error
	ListAttendants(ctx context.Context, branchID uint) ([]models.Attendant, error)
	CreateAttendant(ctx context.Context, a *models.Attendant) error
	CreateShiftData(ctx context.Context, r *models.ShiftData) error
	ListShiftDataByShift(ctx context.Context, shiftID uint) ([]models.ShiftData, error)
	AppendAudit(ctx context.Context, entry models.AuditLog) error
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}

// PriceLookup resolves a default price per liter for a pump label.
type PriceLookup interface {
	PriceFor(pumpProduct string) (float64, bool)
}
