package importer

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/httpx"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// readUpload turns the multipart form into a workbook and the uploader's
// defaults: form fields branch, date (YYYY-MM-DD) and time.
func readUpload(c *fiber.Ctx) (Workbook, Options, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, Options{}, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, Options{}, fiber.NewError(fiber.StatusBadRequest, "file could not be opened")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, Options{}, fiber.NewError(fiber.StatusBadRequest, "file could not be read")
	}

	wb, err := OpenWorkbook(fh.Filename, data)
	if err != nil {
		return nil, Options{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	date, err := httpx.ParseDate(c.FormValue("date"))
	if err != nil {
		return nil, Options{}, err
	}
	opts := Options{Branch: strings.TrimSpace(c.FormValue("branch")), ShiftDate: date}
	if t := c.FormValue("time"); t != "" {
		st := models.ShiftTime(t)
		if !st.Valid() {
			return nil, Options{}, fiber.NewError(fiber.StatusBadRequest, "time must be Morning or Evening")
		}
		opts.ShiftTime = st
	}
	return wb, opts, nil
}

// POST /api/imports/preview (multipart: file, branch, date, time)
func PreviewHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wb, opts, err := readUpload(c)
		if err != nil {
			return err
		}
		p, err := svc.Preview(c.UserContext(), wb, opts)
		if err != nil {
			return httpx.MapError(err)
		}
		return c.JSON(p)
	}
}

// POST /api/imports/apply (multipart: file, branch, date, time, confirm_new_attendants)
//
// The file is parsed again rather than staged between preview and apply.
func ApplyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wb, opts, err := readUpload(c)
		if err != nil {
			return err
		}
		confirm, _ := strconv.ParseBool(c.FormValue("confirm_new_attendants", "false"))

		p, err := svc.Preview(c.UserContext(), wb, opts)
		if err != nil {
			return httpx.MapError(err)
		}
		rep, err := svc.Apply(c.UserContext(), p.Result, ApplyOptions{ConfirmNewAttendants: confirm}, auth.ActorFrom(c))
		if errors.Is(err, ErrNoRowsInserted) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "report": rep})
		}
		if err != nil {
			return httpx.MapError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}
