package shift

import (
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/httpx"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type OpenShiftRequest struct {
	BranchID  uint   `json:"branch_id" validate:"required"`
	ShiftDate string `json:"shift_date" validate:"required"`
	ShiftTime string `json:"shift_time" validate:"required,oneof=Morning Evening"`
}

type ShiftDataRequest struct {
	ShiftID         uint    `json:"shift_id" validate:"required"`
	AttendantName   string  `json:"attendant_name" validate:"required,max=100"`
	CreateAttendant bool    `json:"create_attendant"`
	PumpProduct     string  `json:"pump_product" validate:"required,max=100"`
	OpeningMeter    float64 `json:"opening_meter" validate:"gte=0"`
	ClosingMeter    float64 `json:"closing_meter" validate:"gte=0"`
	PricePerLiter   float64 `json:"price_per_liter" validate:"gte=0"`
	CashRemitted    float64 `json:"cash_remitted" validate:"gte=0"`
	POSRemitted     float64 `json:"pos_remitted" validate:"gte=0"`
}

// POST /api/shifts/open
func OpenShiftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenShiftRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		date, err := httpx.ParseDate(body.ShiftDate)
		if err != nil {
			return err
		}

		sh, created, err := svc.Open(c.UserContext(), OpenInput{
			BranchID:  body.BranchID,
			ShiftDate: date,
			ShiftTime: models.ShiftTime(body.ShiftTime),
		}, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}

		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{"shift": sh, "created": created})
	}
}

// POST /api/shifts/:id/close
func CloseShiftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		sh, err := svc.Close(c.UserContext(), id, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(sh)
	}
}

// POST /api/shifts/:id/sign-off
func SignOffShiftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		sh, err := svc.SignOff(c.UserContext(), id, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(sh)
	}
}

// GET /api/shifts/active?branch_id=1&date=2025-03-14&time=Morning
func ActiveShiftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID := c.QueryInt("branch_id", 0)
		if branchID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id is required")
		}
		date, err := httpx.ParseDate(c.Query("date"))
		if err != nil {
			return err
		}
		sh, err := svc.Active(c.UserContext(), uint(branchID), date, models.ShiftTime(c.Query("time")))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(sh)
	}
}

// POST /api/shift-data
func CreateShiftDataHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ShiftDataRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		rec, err := svc.RecordEntry(c.UserContext(), EntryInput{
			ShiftID:         body.ShiftID,
			AttendantName:   body.AttendantName,
			CreateAttendant: body.CreateAttendant,
			PumpProduct:     body.PumpProduct,
			OpeningMeter:    body.OpeningMeter,
			ClosingMeter:    body.ClosingMeter,
			PricePerLiter:   body.PricePerLiter,
			CashRemitted:    body.CashRemitted,
			POSRemitted:     body.POSRemitted,
		}, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"record":         rec,
			"attendant_name": rec.Attendant.Name,
		})
	}
}

// GET /api/shifts/:id/data
func ListShiftDataHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		records, err := svc.Records(c.UserContext(), id)
		if err != nil {
			return httpx.MapError(err)
		}

		type item struct {
			models.ShiftData
			AttendantName string `json:"attendant_name"`
		}
		resp := make([]item, 0, len(records))
		for _, r := range records {
			resp = append(resp, item{ShiftData: r, AttendantName: r.Attendant.Name})
		}
		return c.JSON(resp)
	}
}
