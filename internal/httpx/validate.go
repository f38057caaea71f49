package httpx

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// FieldErrors is returned with status 400 when a request body fails its
// validate tags. Keys are json field names, values the failed tag.
type FieldErrors struct {
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func (e *FieldErrors) Error() string {
	return e.Message
}

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ParseAndValidate parses the JSON body into dst and runs validator tags on it.
func ParseAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return Validate(dst)
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &FieldErrors{Message: "validation failed", Fields: ProcessValidationErrors(verrs)}
}

func ProcessValidationErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		out[ve.Field()] = ve.Tag()
	}
	return out
}

// ParseDate accepts YYYY-MM-DD; an empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return d, nil
}

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return uint(id), nil
}

// ErrorHandler is the app-wide fiber error handler: every failure is
// rendered as {"error": msg}, with field details for validation failures.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadRequest).JSON(fe)
	}
	mapped := MapError(err)
	var e *fiber.Error
	if errors.As(mapped, &e) {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unexpected server error"})
}
