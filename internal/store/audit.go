package store

import (
	"context"

	"fuelstation-backend/internal/models"
)

func (s *Store) AppendAudit(ctx context.Context, entry models.AuditLog) error {
	return s.q(ctx).Create(&entry).Error
}

type AuditFilter struct {
	BranchID   uint
	UserID     uint
	EntityType string
	EntityID   uint
	EntityRef  string
	Limit      int
}

func (s *Store) ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, error) {
	q := s.q(ctx).Model(&models.AuditLog{})
	if f.BranchID != 0 {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != 0 {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.EntityRef != "" {
		q = q.Where("entity_ref = ?", f.EntityRef)
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.AuditLog
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
