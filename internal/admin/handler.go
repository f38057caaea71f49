package admin

import (
	"errors"

	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/httpx"

	"github.com/gofiber/fiber/v2"
)

type BranchRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"max=255"`
}

type UpdateBranchRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Location string `json:"location" validate:"max=255"`
}

type AttendantRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func mapError(err error) error {
	if errors.Is(err, ErrDuplicateName) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return httpx.MapError(err)
}

// GET /api/branches
func ListBranchesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := svc.Branches(c.UserContext())
		if err != nil {
			return mapError(err)
		}
		return c.JSON(branches)
	}
}

// GET /api/branches/:id
func GetBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		b, err := svc.Branch(c.UserContext(), id)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(b)
	}
}

// POST /api/branches
func CreateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BranchRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		b, err := svc.CreateBranch(c.UserContext(), BranchInput{Name: body.Name, Location: body.Location}, auth.ActorFrom(c))
		if err != nil {
			return mapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// PUT /api/branches/:id
func UpdateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		var body UpdateBranchRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		b, err := svc.UpdateBranch(c.UserContext(), id, BranchInput{Name: body.Name, Location: body.Location}, auth.ActorFrom(c))
		if err != nil {
			return mapError(err)
		}
		return c.JSON(b)
	}
}

// GET /api/branches/:id/attendants
func ListAttendantsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		list, err := svc.Attendants(c.UserContext(), id)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(list)
	}
}

// POST /api/branches/:id/attendants
func CreateAttendantHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := httpx.ParamID(c, "id")
		if err != nil {
			return err
		}
		var body AttendantRequest
		if err := httpx.ParseAndValidate(c, &body); err != nil {
			return err
		}
		a, err := svc.CreateAttendant(c.UserContext(), id, body.Name, auth.ActorFrom(c))
		if err != nil {
			return mapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}
