// Package context threads the request ID across layer boundaries so
// repository and service log lines match up with the HTTP access log.
package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = "request_id"

const (
	headerRequestID  = "X-Request-ID"
	unknownRequestID = "unknown"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID never fails; a context carrying no ID reads as "unknown"
// so log lines stay greppable.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return requestID
	}
	return unknownRequestID
}

// FromFiberCtx detaches the request ID from the fiber request so it can
// outlive the handler inside service-level timeouts.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, _ := c.Locals(headerRequestID).(string)
	if requestID == "" {
		requestID = c.Get(headerRequestID)
	}
	if requestID == "" {
		requestID = unknownRequestID
	}

	return WithRequestID(context.Background(), requestID)
}
