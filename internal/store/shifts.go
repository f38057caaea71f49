package store

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

func (s *Store) GetShift(ctx context.Context, id uint) (models.Shift, error) {
	var sh models.Shift
	err := s.q(ctx).First(&sh, id).Error
	return sh, notFound(err)
}

// FindOpenShift returns the OPEN shift for the (branch, date, time) slot.
func (s *Store) FindOpenShift(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) (models.Shift, error) {
	var sh models.Shift
	err := s.q(ctx).
		Where("branch_id = ? AND shift_date = ? AND shift_time = ? AND status = ?",
			branchID, date.Format("2006-01-02"), t, models.ShiftOpen).
		First(&sh).Error
	return sh, notFound(err)
}

// LatestOpenShift returns the most recently dated OPEN shift of a branch.
func (s *Store) LatestOpenShift(ctx context.Context, branchID uint) (models.Shift, error) {
	var sh models.Shift
	err := s.q(ctx).
		Where("branch_id = ? AND status = ?", branchID, models.ShiftOpen).
		Order("shift_date DESC, id DESC").
		First(&sh).Error
	return sh, notFound(err)
}

func (s *Store) CreateShift(ctx context.Context, sh *models.Shift) error {
	return s.create(ctx, sh)
}

func (s *Store) SaveShift(ctx context.Context, sh *models.Shift) error {
	return s.q(ctx).Model(sh).Updates(map[string]any{
		"status":        sh.Status,
		"gm_signed_off": sh.GMSignedOff,
	}).Error
}

// ListShifts returns the shifts of branchID (all branches when zero), most
// recent date first and insertion order within a date.
func (s *Store) ListShifts(ctx context.Context, branchID uint) ([]models.Shift, error) {
	var shifts []models.Shift
	q := s.q(ctx).Order("shift_date DESC, id ASC")
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	err := q.Find(&shifts).Error
	return shifts, err
}

// ListShiftsSince returns shifts dated on or after from.
func (s *Store) ListShiftsSince(ctx context.Context, branchID uint, from time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	q := s.q(ctx).Where("shift_date >= ?", from.Format("2006-01-02")).Order("shift_date ASC, id ASC")
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	err := q.Find(&shifts).Error
	return shifts, err
}
