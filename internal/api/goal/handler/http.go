package goalHandler

import (
	goalService "FiscalGolang/internal/api/goal/service"
	"FiscalGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	goalService goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	goals := srv.Group("/goals")

	goals.Post("/", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goals.Get("/", h.middleware.NewTokenMiddleware, h.GetGoals)
	goals.Get("/:id", h.middleware.NewTokenMiddleware, h.GetGoalByID)
	goals.Put("/", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goals.Post("/add-money", h.middleware.NewTokenMiddleware, h.AddMoney)
	goals.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
}
