package store

import (
	"context"

	"fuelstation-backend/internal/models"
)

func (s *Store) CreateExpense(ctx context.Context, e *models.Expense) error {
	return s.create(ctx, e)
}

func (s *Store) GetExpense(ctx context.Context, id uint) (models.Expense, error) {
	var e models.Expense
	err := s.q(ctx).First(&e, id).Error
	return e, notFound(err)
}

func (s *Store) SaveExpense(ctx context.Context, e *models.Expense) error {
	return s.q(ctx).Model(e).Updates(map[string]any{
		"status":     e.Status,
		"decided_by": e.DecidedBy,
		"decided_at": e.DecidedAt,
	}).Error
}

func (s *Store) ListExpensesByShiftData(ctx context.Context, shiftDataID uint) ([]models.Expense, error) {
	return s.ListExpensesByShiftDataIDs(ctx, []uint{shiftDataID})
}

func (s *Store) ListExpensesByShiftDataIDs(ctx context.Context, ids []uint) ([]models.Expense, error) {
	if len(ids) == 0 {
		return []models.Expense{}, nil
	}
	var expenses []models.Expense
	err := s.q(ctx).Where("shift_data_id IN ?", ids).Order("id ASC").Find(&expenses).Error
	return expenses, err
}

func (s *Store) ListExpensesByStatus(ctx context.Context, status models.ExpenseStatus) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.q(ctx).Where("status = ?", status).Order("created_at ASC, id ASC").Find(&expenses).Error
	return expenses, err
}
