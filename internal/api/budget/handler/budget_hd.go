package budgetHandler

import (
	"FiscalGolang/internal/api/budget"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"FiscalGolang/pkg/handlerUtil"
	jwtPkg "FiscalGolang/pkg/jwt"
	"FiscalGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BudgetHandler) CreateBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create budget request")

	var req budget.CreateBudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.budgetService.CreateBudget(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeBudgetResponse(created))
	}
}

func (h *BudgetHandler) GetBudgets(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	budgets, err := h.budgetService.GetBudgets(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budgets")
	}

	responses := make([]budget.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, makeBudgetResponse(b))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, responses)
	}
}

func (h *BudgetHandler) GetBudgetByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("budget ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	b, err := h.budgetService.GetBudgetByID(c, id, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeBudgetResponse(b))
	}
}

func (h *BudgetHandler) GetBudgetProgress(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("budget ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	b, progress, err := h.budgetService.GetBudgetProgress(c, id, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget_progress")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, budget.BudgetProgressResponse{
			Budget:       makeBudgetResponse(b),
			Spent:        progress.Spent.String(),
			Remaining:    progress.Remaining.String(),
			Percentage:   progress.Percentage,
			IsOverBudget: progress.IsOverBudget,
		})
	}
}

func (h *BudgetHandler) UpdateBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update budget request")

	var req budget.UpdateBudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.budgetService.UpdateBudget(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeBudgetResponse(updated))
	}
}

func (h *BudgetHandler) DeleteBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("budget ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.budgetService.DeleteBudget(c, id, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
		})
	}
}

func makeBudgetResponse(b entity.Budget) budget.BudgetResponse {
	return budget.BudgetResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.String(),
		Period:     b.Period,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}
