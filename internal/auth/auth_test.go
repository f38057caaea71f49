package auth

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestParseToken_RoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Name: "Grace", Email: "g@example.com", Role: models.RoleManager}
	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Grace", claims.Name)
	assert.Equal(t, models.RoleManager, claims.Role)

	_, err = ParseToken(strings.Repeat("x", 32), token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleManager}
	token, err := generateToken(testSecret, user, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Get("/who", JWTMiddleware(cfg), RequireRole(models.RoleManager), func(c *fiber.Ctx) error {
		a := ActorFrom(c)
		return c.SendString(a.UserName)
	})

	token, err := GenerateToken(testSecret, &models.User{ID: 3, Name: "Ifeoma", Role: models.RoleManager})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid", "Bearer " + token, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/who", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Get("/x", JWTMiddleware(cfg), RequireRole(models.RoleManager), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	token, err := GenerateToken(testSecret, &models.User{ID: 3, Role: models.UserRole("attendant")})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
