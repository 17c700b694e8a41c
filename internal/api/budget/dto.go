package budget

import "github.com/shopspring/decimal"

type CreateBudgetRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	Period     string `json:"period" validate:"omitempty,oneof=monthly weekly yearly"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

type UpdateBudgetRequest struct {
	ID        string `json:"id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	Amount    string `json:"amount"`
	Period    string `json:"period" validate:"omitempty,oneof=monthly weekly yearly"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  *bool  `json:"is_active"`
}

type BudgetResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	Amount     string `json:"amount"`
	Period     string `json:"period"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Progress is the derived spend view of a budget, recomputed from the
// transaction table on every read.
type Progress struct {
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Percentage   string
	IsOverBudget bool
}

// BudgetProgressResponse is the wire shape of Progress.
type BudgetProgressResponse struct {
	Budget       BudgetResponse `json:"budget"`
	Spent        string         `json:"spent"`
	Remaining    string         `json:"remaining"`
	Percentage   string         `json:"percentage"`
	IsOverBudget bool           `json:"is_over_budget"`
}
