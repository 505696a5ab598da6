package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidator returns a validator reporting fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindRequest parses the JSON body into dst and validates it. It returns the
// response body for a 400 reply, or nil when dst is usable.
func bindRequest(c *fiber.Ctx, validate *validator.Validate, dst interface{}) fiber.Map {
	if err := c.BodyParser(dst); err != nil {
		return fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		}
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fiber.Map{
				"success": false,
				"message": "Validation failed",
				"error":   err.Error(),
			}
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		}
	}
	return nil
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// failInternal reports a storage or other unexpected failure.
func failInternal(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
