package entity

import (
	"FiscalGolang/internal/api/budget"
	"time"

	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

func IsValidBudgetPeriod(period string) bool {
	switch BudgetPeriod(period) {
	case BudgetPeriodMonthly, BudgetPeriodWeekly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}

// Budget caps expense spending for one category over an inclusive date
// window. Period is informational only and does not drive any date math.
type Budget struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (b *Budget) Validate() error {
	if !IsValidBudgetPeriod(b.Period) {
		return budget.ErrInvalidPeriod
	}

	if b.Amount.IsNegative() {
		return budget.ErrInvalidAmount
	}

	start, err := time.Parse("2006-01-02", b.StartDate)
	if err != nil {
		return budget.ErrInvalidDate
	}

	end, err := time.Parse("2006-01-02", b.EndDate)
	if err != nil {
		return budget.ErrInvalidDate
	}

	if end.Before(start) {
		return budget.ErrInvalidDateRange
	}

	return nil
}
