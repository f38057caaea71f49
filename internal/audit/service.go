package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"fuelstation-backend/internal/models"
)

// Actor is the authenticated user behind a change.
type Actor struct {
	UserID   uint
	UserName string
}

type LogOptions struct {
	Actor       Actor
	BranchID    *uint
	EntityType  string
	EntityID    uint
	EntityRef   string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Appender persists audit entries; *store.Store implements it, including
// inside a transaction.
type Appender interface {
	AppendAudit(ctx context.Context, entry models.AuditLog) error
}

// Entry builds the row for opts. Snapshots are stored as JSON; a missing
// snapshot is the JSON literal null since the columns are jsonb.
func Entry(opts LogOptions) models.AuditLog {
	return models.AuditLog{
		BranchID:    opts.BranchID,
		UserID:      opts.Actor.UserID,
		UserName:    opts.Actor.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		EntityRef:   opts.EntityRef,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  snapshot(opts.Before),
		AfterData:   snapshot(opts.After),
	}
}

func WriteLog(ctx context.Context, w Appender, opts LogOptions) error {
	if err := w.AppendAudit(ctx, Entry(opts)); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func BranchRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
