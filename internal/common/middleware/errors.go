package middleware

import (
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Error Handler
// ============================================================

type ErrorResponse struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// ErrorHandler: общий fiber.ErrorHandler для ошибок, которые хендлеры вернули наверх.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr(fiberError.Message),
		})
	}

	var valErr validator.ValidationErrors
	if errors.As(err, &valErr) {
		var lists []string
		for _, e := range valErr {
			lists = append(lists, e.Field()+" ("+e.Tag()+")")
		}

		return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + strings.Join(lists, ", ")),
			Error:   gut.Ptr(valErr.Error()),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
