package store

import (
	"context"
	"time"

	"fuelstation-backend/internal/models"
)

func (s *Store) CreateCashReport(ctx context.Context, r *models.CashAnalysisReport) error {
	return s.create(ctx, r)
}

// ListCashReports filters by branch; a zero date or empty shift time matches
// any value.
func (s *Store) ListCashReports(ctx context.Context, branchID uint, date time.Time, t models.ShiftTime) ([]models.CashAnalysisReport, error) {
	var reports []models.CashAnalysisReport
	q := s.q(ctx).Where("branch_id = ?", branchID)
	if !date.IsZero() {
		q = q.Where("shift_date = ?", date.Format("2006-01-02"))
	}
	if t != "" {
		q = q.Where("shift_time = ?", t)
	}
	err := q.Order("id ASC").Find(&reports).Error
	return reports, err
}
