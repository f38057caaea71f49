// Package httpx holds the fiber helpers shared by every handler package.
package httpx

import (
	"errors"

	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// MapError turns a service error into a *fiber.Error. Packages with errors of
// their own map them before calling MapError. Unknown errors are logged and
// hidden behind a generic 500.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	var ve *reconcile.ValidationError
	var re *reconcile.ResolutionError
	switch {
	case errors.As(err, &ve):
		return fiber.NewError(fiber.StatusBadRequest, ve.Error())
	case errors.As(err, &re):
		return fiber.NewError(fiber.StatusNotFound, re.Error())
	case errors.Is(err, reconcile.ErrInvalidTransition):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	config.GetLogger().WithError(err).Error("unhandled error")
	return fiber.NewError(fiber.StatusInternalServerError, "unexpected server error")
}
