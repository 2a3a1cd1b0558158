package middleware

import (
	"time"

	"refernet/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *logging.Logger
}

func NewAccessLogMiddleware(logger *logging.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		m.logger.Info("http access",
			"rid", rid,
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
			"resp_bytes", c.Response().Header.ContentLength(),
			"ua", c.Get("User-Agent"),
		)

		return err
	}
}
