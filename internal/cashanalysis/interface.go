package cashanalysis

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	GetBranch(ctx context.Context, id uint) (models.Branch, error)
	CreateCashReport(ctx context.Context, r *models.CashAnalysisReport) error
	ListCashReports(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) ([]models.CashAnalysisReport, error)
	ListShifts(ctx context.Context, branchID uint) ([]models.Shift, error)
	ListShiftDataByShifts(ctx context.Context, shiftIDs []uint) ([]models.ShiftData, error)
	AppendAudit(ctx context.Context, entry models.AuditLog) error
}
