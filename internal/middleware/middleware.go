package middleware

import (
	"FiscalGolang/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	sessions            redis.IRedis
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, sessions redis.IRedis) Middleware {
	rateLimit := newRateLimiter(50, 100)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		rateLimitter:        rateLimit,
		requestIDMiddleware: requestID,
		sessions:            sessions,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
