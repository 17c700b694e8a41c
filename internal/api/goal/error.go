package goal

import "FiscalGolang/pkg/response"

var (
	ErrGoalNotFound    = response.NewError(404, "goal not found")
	ErrInvalidAmount   = response.NewError(400, "invalid goal amount")
	ErrInvalidDeadline = response.NewError(400, "invalid goal deadline")
	ErrCreateGoal      = response.NewError(500, "failed to create goal")
	ErrUpdateGoal      = response.NewError(500, "failed to update goal")
	ErrDeleteGoal      = response.NewError(500, "failed to delete goal")
)
