package util

import (
	"fmt"
	"runtime/debug"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/response"
	"github.com/gofiber/fiber/v2"
)

const publicRouteKey = "util.public_route"

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details any
}

// envelope is the JSON body of every reply. The debug fields are only
// filled for internal routes of a development build.
type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
	Details    any                  `json:"details,omitempty"`
	DevMessage string               `json:"dev_message,omitempty"`
	Trace      string               `json:"trace,omitempty"`
}

// FormError carries per-field validation messages.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{Message: message, Errors: errors}
}

// Public marks the remaining handlers of a route as candidate-facing. Error
// replies on such routes never carry internal detail.
func Public(c *fiber.Ctx) error {
	c.Locals(publicRouteKey, true)
	return c.Next()
}

func isPublic(c *fiber.Ctx) bool {
	public, _ := c.Locals(publicRouteKey).(bool)
	return public
}

func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	return c.Status(statusOr(params.Code, fiber.StatusOK)).JSON(envelope{
		Success:    true,
		Message:    params.Message,
		Meta:       params.Meta,
		Pagination: params.Pagination,
		Data:       params.Data,
	})
}

// ErrorResponse writes the failure envelope. cause is echoed back with a
// stack trace only in development and never on a Public route.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, cause ...error) error {
	body := envelope{Message: params.Message, Details: params.Details}
	if len(cause) > 0 && cause[0] != nil && config.LoadAppConfig().IsDevelopment() && !isPublic(c) {
		body.DevMessage = cause[0].Error()
		body.Trace = string(debug.Stack())
	}
	return c.Status(statusOr(params.Code, fiber.StatusInternalServerError)).JSON(body)
}

func statusOr(code, fallback int) int {
	if code == 0 {
		return fallback
	}
	return code
}
