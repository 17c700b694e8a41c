package entity

import (
	"FiscalGolang/internal/api/goal"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount grows additively through the
// add-money operation and flips IsCompleted once it reaches TargetAmount.
type Goal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	IsCompleted   bool            `json:"is_completed"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (g *Goal) Validate() error {
	if !g.TargetAmount.IsPositive() {
		return goal.ErrInvalidAmount
	}

	if g.CurrentAmount.IsNegative() {
		return goal.ErrInvalidAmount
	}

	if g.Deadline != "" {
		if _, err := time.Parse("2006-01-02", g.Deadline); err != nil {
			return goal.ErrInvalidDeadline
		}
	}

	return nil
}
