package cashanalysis

import (
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/httpx"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCashAnalysisRequest struct {
	BranchID        uint        `json:"branch_id" validate:"required"`
	AttendantName   string      `json:"attendant_name" validate:"required,max=100"`
	PumpNumber      string      `json:"pump_number" validate:"max=50"`
	ProductType     string      `json:"product_type" validate:"max=20"`
	Denominations   map[int]int `json:"denominations" validate:"required"`
	ExpensesClaimed float64     `json:"expenses_claimed" validate:"gte=0"`
	POSClaimed      float64     `json:"pos_claimed" validate:"gte=0"`
	ShiftDate       string      `json:"shift_date" validate:"required"`
	ShiftTime       string      `json:"shift_time" validate:"required,oneof=Morning Evening"`
}

// POST /api/cash-analysis
func CreateCashAnalysisHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCashAnalysisRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		date, err := httpx.ParseDate(body.ShiftDate)
		if err != nil {
			return err
		}

		report, err := svc.Submit(c.UserContext(), SubmitInput{
			BranchID:        body.BranchID,
			AttendantName:   body.AttendantName,
			PumpNumber:      body.PumpNumber,
			ProductType:     body.ProductType,
			Denominations:   body.Denominations,
			ExpensesClaimed: body.ExpensesClaimed,
			POSClaimed:      body.POSClaimed,
			ShiftDate:       date,
			ShiftTime:       models.ShiftTime(body.ShiftTime),
		}, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(report)
	}
}

// GET /api/cash-analysis/reconcile?branch_id=1&date=2025-03-14&time=Morning&strict=true
func ReconcileHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID := c.QueryInt("branch_id", 0)
		if branchID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id is required")
		}
		date, err := httpx.ParseDate(c.Query("date"))
		if err != nil {
			return err
		}
		t := models.ShiftTime(c.Query("time"))
		if t != "" && !t.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "time must be Morning or Evening")
		}

		res, err := svc.Reconcile(c.UserContext(), Query{
			BranchID:  uint(branchID),
			ShiftDate: date,
			ShiftTime: t,
			Strict:    c.QueryBool("strict", false),
		})
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(res)
	}
}
