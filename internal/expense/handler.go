package expense

import (
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/httpx"
	"fuelstation-backend/internal/reconcile"

	"github.com/gofiber/fiber/v2"
)

type CreateExpenseRequest struct {
	ShiftDataID uint    `json:"shift_data_id" validate:"required"`
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	ReceiptURL  string  `json:"receipt_url" validate:"omitempty,url,max=500"`
}

// POST /api/expenses
func CreateExpenseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		e, err := svc.Submit(c.UserContext(), SubmitInput{
			ShiftDataID: body.ShiftDataID,
			Description: body.Description,
			Amount:      body.Amount,
			ReceiptURL:  body.ReceiptURL,
		}, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GET /api/expenses/pending
func ListPendingExpensesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Pending(c.UserContext())
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(items)
	}
}

// POST /api/expenses/:id/approve
func ApproveExpenseHandler(svc *Service) fiber.Handler {
	return decideHandler(svc, reconcile.ActionApprove)
}

// POST /api/expenses/:id/reject
func RejectExpenseHandler(svc *Service) fiber.Handler {
	return decideHandler(svc, reconcile.ActionReject)
}

func decideHandler(svc *Service, action reconcile.ExpenseAction) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		e, err := svc.Decide(c.UserContext(), id, action, auth.ActorFrom(c))
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(e)
	}
}
