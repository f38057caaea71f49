package admin

import (
	"context"

	"fuelstation-backend/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type Repository interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	GetBranch(ctx context.Context, id uint) (models.Branch, error)
	CreateBranch(ctx context.Context, b *models.Branch) error
	UpdateBranch(ctx context.Context, b *models.Branch) error
	ListAttendants(ctx context.Context, branchID uint) ([]models.Attendant, error)
	CreateAttendant(ctx context.Context, a *models.Attendant) error
	AppendAudit(ctx context.Context, entry models.AuditLog) error
}
