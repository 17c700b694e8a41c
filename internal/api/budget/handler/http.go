package budgetHandler

import (
	budgetService "FiscalGolang/internal/api/budget/service"
	"FiscalGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets")

	budgets.Post("/", h.middleware.NewTokenMiddleware, h.CreateBudget)
	budgets.Get("/", h.middleware.NewTokenMiddleware, h.GetBudgets)
	budgets.Get("/:id", h.middleware.NewTokenMiddleware, h.GetBudgetByID)
	budgets.Get("/:id/progress", h.middleware.NewTokenMiddleware, h.GetBudgetProgress)
	budgets.Put("/", h.middleware.NewTokenMiddleware, h.UpdateBudget)
	budgets.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBudget)
}
