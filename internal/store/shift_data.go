package store

import (
	"context"

	"fuelstation-backend/internal/models"
)

func (s *Store) GetShiftData(ctx context.Context, id uint) (models.ShiftData, error) {
	var r models.ShiftData
	err := s.q(ctx).Preload("Attendant").First(&r, id).Error
	return r, notFound(err)
}

func (s *Store) CreateShiftData(ctx context.Context, r *models.ShiftData) error {
	return s.create(ctx, r)
}

func (s *Store) ListShiftDataByShift(ctx context.Context, shiftID uint) ([]models.ShiftData, error) {
	return s.ListShiftDataByShifts(ctx, []uint{shiftID})
}

// ListShiftDataByShifts loads records with their attendant so names can be
// joined in memory.
func (s *Store) ListShiftDataByShifts(ctx context.Context, shiftIDs []uint) ([]models.ShiftData, error) {
	if len(shiftIDs) == 0 {
		return []models.ShiftData{}, nil
	}
	var records []models.ShiftData
	err := s.q(ctx).
		Preload("Attendant").
		Where("shift_id IN ?", shiftIDs).
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (s *Store) SetExpensesTotal(ctx context.Context, shiftDataID uint, total float64) error {
	res := s.q(ctx).Model(&models.ShiftData{}).Where("id = ?", shiftDataID).Update("expenses_total", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
