package entity

import (
	"errors"
	"testing"

	"FiscalGolang/internal/api/budget"

	"github.com/shopspring/decimal"
)

func TestBudgetValidate(t *testing.T) {
	valid := Budget{
		Period:    "monthly",
		Amount:    decimal.RequireFromString("1000000"),
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	}

	tests := []struct {
		name    string
		mutate  func(*Budget)
		wantErr error
	}{
		{name: "valid", mutate: func(*Budget) {}},
		{
			name:   "zero amount allowed",
			mutate: func(b *Budget) { b.Amount = decimal.Zero },
		},
		{
			name:   "single day window",
			mutate: func(b *Budget) { b.EndDate = "2025-01-01" },
		},
		{
			name:    "bad period",
			mutate:  func(b *Budget) { b.Period = "daily" },
			wantErr: budget.ErrInvalidPeriod,
		},
		{
			name:    "negative amount",
			mutate:  func(b *Budget) { b.Amount = decimal.RequireFromString("-1") },
			wantErr: budget.ErrInvalidAmount,
		},
		{
			name:    "end before start",
			mutate:  func(b *Budget) { b.EndDate = "2024-12-31" },
			wantErr: budget.ErrInvalidDateRange,
		},
		{
			name:    "unparseable start",
			mutate:  func(b *Budget) { b.StartDate = "Jan 1" },
			wantErr: budget.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := b.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
