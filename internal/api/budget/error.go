package budget

import "FiscalGolang/pkg/response"

var (
	ErrBudgetNotFound   = response.NewError(404, "budget not found")
	ErrCategoryNotFound = response.NewError(404, "category not found")
	ErrInvalidAmount    = response.NewError(400, "invalid budget amount")
	ErrInvalidPeriod    = response.NewError(400, "invalid budget period")
	ErrInvalidDateRange = response.NewError(400, "budget end date is before start date")
	ErrInvalidDate      = response.NewError(400, "invalid budget date")
	ErrCreateBudget     = response.NewError(500, "failed to create budget")
	ErrUpdateBudget     = response.NewError(500, "failed to update budget")
	ErrDeleteBudget     = response.NewError(500, "failed to delete budget")
)
