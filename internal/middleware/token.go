package middleware

import (
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	jwtPkg "FiscalGolang/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"strings"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header format is invalid")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.Warn("Invalid token claims")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	if claims["id"] == nil || claims["email"] == nil || claims["name"] == nil || claims["sid"] == nil {
		m.log.Warn("Token claims are missing required fields")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	user := entity.UserLoginData{
		ID:        claims["id"].(string),
		Email:     claims["email"].(string),
		Name:      claims["name"].(string),
		SessionID: claims["sid"].(string),
	}

	// A signed token is not enough on its own: the session must still be
	// live in the store, so logout revokes access immediately.
	sessionUserID, err := m.sessions.GetSession(contextPkg.FromFiberCtx(ctx), user.SessionID)
	if err != nil || sessionUserID != user.ID {
		m.log.WithFields(logrus.Fields{
			"session_id": user.SessionID,
		}).Warn("Session is no longer valid")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	ctx.Locals("user", user)

	return ctx.Next()
}
