package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &reconcile.ValidationError{Field: "closing_meter", Reason: "below opening"}, fiber.StatusBadRequest},
		{"resolution", fmt.Errorf("resolve: %w", &reconcile.ResolutionError{Kind: reconcile.KindBranch, Token: "Ikeja"}), fiber.StatusNotFound},
		{"transition", fmt.Errorf("%w: expense is APPROVED", reconcile.ErrInvalidTransition), fiber.StatusConflict},
		{"not found", fmt.Errorf("get shift: %w", store.ErrNotFound), fiber.StatusNotFound},
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
		{"unknown", errors.New("db down"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fe *fiber.Error
			require.True(t, errors.As(MapError(tt.err), &fe))
			assert.Equal(t, tt.code, fe.Code)
		})
	}
	assert.NoError(t, MapError(nil))
}

type sample struct {
	BranchID uint    `json:"branch_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
}

func TestParseAndValidate(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var body sample
		if err := ParseAndValidate(c, &body); err != nil {
			return err
		}
		return c.JSON(body)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"amount": -1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out FieldErrors
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, map[string]string{"branch_id": "required", "amount": "gt"}, out.Fields)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"branch_id": 2, "amount": 5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, 14, d.Day())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("14/03/2025")
	assert.Error(t, err)
}
