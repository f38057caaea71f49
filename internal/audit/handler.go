package audit

import (
	"context"
	"fmt"

	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type Lister interface {
	ListAuditLogs(ctx context.Context, f store.AuditFilter) ([]models.AuditLog, error)
}

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	BranchID    *uint              `json:"branch_id"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	EntityRef   string             `json:"entity_ref,omitempty"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	BeforeData  string             `json:"before_data"`
	AfterData   string             `json:"after_data"`
}

// GET /api/audit-logs?entity_type=expense&entity_id=1&branch_id=1&batch=<uuid>
func ListAuditLogsHandler(repo Lister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := store.AuditFilter{
			BranchID:   queryUint(c, "branch_id"),
			UserID:     queryUint(c, "user_id"),
			EntityType: c.Query("entity_type"),
			EntityID:   queryUint(c, "entity_id"),
			EntityRef:  c.Query("batch"),
			Limit:      c.QueryInt("limit", 100),
		}

		logs, err := repo.ListAuditLogs(c.UserContext(), f)
		if err != nil {
			config.LogError(config.GetLogger(), "audit", "ListAuditLogsHandler", "list audit logs", f, err)
			return fiber.NewError(fiber.StatusInternalServerError, "could not list audit logs")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, log := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          log.ID,
				CreatedAt:   log.CreatedAt.Format("2006-01-02 15:04:05"),
				BranchID:    log.BranchID,
				UserID:      log.UserID,
				UserName:    log.UserName,
				EntityType:  log.EntityType,
				EntityID:    log.EntityID,
				EntityRef:   log.EntityRef,
				Action:      log.Action,
				Description: log.Description,
				BeforeData:  log.BeforeData,
				AfterData:   log.AfterData,
			})
		}

		return c.JSON(resp)
	}
}

func queryUint(c *fiber.Ctx, key string) uint {
	s := c.Query(key)
	if s == "" {
		return 0
	}
	var v uint
	if _, err := fmt.Sscan(s, &v); err != nil {
		return 0
	}
	return v
}
