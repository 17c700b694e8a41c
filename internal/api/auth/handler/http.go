package authHandler

import (
	authService "FiscalGolang/internal/api/auth/service"
	"FiscalGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)

	users := srv.Group("/users")

	users.Get("/me", h.middleware.NewTokenMiddleware, h.GetProfile)
	users.Put("/me", h.middleware.NewTokenMiddleware, h.UpdateProfile)
	users.Delete("/me", h.middleware.NewTokenMiddleware, h.DeleteUser)
}
