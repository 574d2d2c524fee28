package presenters

import (
	"Recipe-Blog-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Data    any                `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// ValidationErrorResponse lists every violated field of a request body.
func ValidationErrorResponse(c *fiber.Ctx, message string, fieldErrors []domain.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Status:  false,
		Message: message,
		Errors:  fieldErrors,
	})
}
