package middleware

import (
	"errors"

	"refernet/internal/pkg/logging"
	"refernet/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries an HTTP status through the handler chain so the error
// middleware can render a semantic envelope instead of a bare message.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *logging.Logger
}

func NewErrorMiddleware(logger *logging.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", "panic", r, "path", c.OriginalURL())
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalizeError(c, err)
		return response.Error(c, status, msg, data)
	}
}

// normalizeError collapses any error into a renderable status and message.
// Server-side causes are logged and masked; client errors pass through.
func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logger.Error("request failed", "error", appErr.Error(), "path", c.OriginalURL())
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Error("request failed", "error", fiberErr.Error(), "path", c.OriginalURL())
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, nil
	}

	m.logger.Error("request failed", "error", err.Error(), "path", c.OriginalURL())
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
