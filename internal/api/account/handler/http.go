package accountHandler

import (
	accountService "FiscalGolang/internal/api/account/service"
	"FiscalGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	accountService accountService.IAccountService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	accountService accountService.IAccountService,
) *AccountHandler {
	return &AccountHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		accountService: accountService,
	}
}

func (h *AccountHandler) Start(srv fiber.Router) {
	accounts := srv.Group("/accounts")

	accounts.Post("/", h.middleware.NewTokenMiddleware, h.CreateAccount)
	accounts.Get("/", h.middleware.NewTokenMiddleware, h.GetAccounts)
	accounts.Get("/total-balance", h.middleware.NewTokenMiddleware, h.GetTotalBalance)
	accounts.Get("/:id", h.middleware.NewTokenMiddleware, h.GetAccountByID)
	accounts.Put("/", h.middleware.NewTokenMiddleware, h.UpdateAccount)
	accounts.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteAccount)
}
