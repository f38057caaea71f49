package dashboard

import (
	"fuelstation-backend/internal/httpx"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/overview?branch_id=1
func OverviewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID := c.QueryInt("branch_id", 0)
		if branchID < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid branch_id")
		}
		ov, err := svc.Overview(c.UserContext(), uint(branchID))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(ov)
	}
}

// GET /api/dashboard/trend?days=7&branch_id=1
func TrendHandler(svc *Service, defaultDays int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", defaultDays)
		branchID := c.QueryInt("branch_id", 0)
		if branchID < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid branch_id")
		}
		tr, err := svc.Trend(c.UserContext(), days, uint(branchID))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(tr)
	}
}
