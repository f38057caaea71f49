package store

import (
	"context"

	"fuelstation-backend/internal/models"
)

func (s *Store) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	err := s.q(ctx).Order("id ASC").Find(&branches).Error
	return branches, err
}

func (s *Store) GetBranch(ctx context.Context, id uint) (models.Branch, error) {
	var b models.Branch
	err := s.q(ctx).First(&b, id).Error
	return b, notFound(err)
}

func (s *Store) CreateBranch(ctx context.Context, b *models.Branch) error {
	return s.create(ctx, b)
}

func (s *Store) UpdateBranch(ctx context.Context, b *models.Branch) error {
	return s.q(ctx).Model(b).Updates(map[string]any{
		"name":     b.Name,
		"location": b.Location,
	}).Error
}

// ListAttendants returns the attendants of branchID, or of every branch when
// branchID is zero.
func (s *Store) ListAttendants(ctx context.Context, branchID uint) ([]models.Attendant, error) {
	var attendants []models.Attendant
	q := s.q(ctx).Order("branch_id ASC, name ASC")
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	err := q.Find(&attendants).Error
	return attendants, err
}

func (s *Store) CreateAttendant(ctx context.Context, a *models.Attendant) error {
	return s.create(ctx, a)
}
