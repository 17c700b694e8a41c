package entity

import (
	"errors"
	"testing"

	"FiscalGolang/internal/api/transaction"

	"github.com/shopspring/decimal"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Type:   "expense",
		Amount: decimal.RequireFromString("250000"),
		Date:   "2025-01-15",
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{
			name:    "bad type",
			mutate:  func(txn *Transaction) { txn.Type = "transfer" },
			wantErr: transaction.ErrInvalidTransactionType,
		},
		{
			name:    "zero amount",
			mutate:  func(txn *Transaction) { txn.Amount = decimal.Zero },
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name:    "bad date",
			mutate:  func(txn *Transaction) { txn.Date = "15/01/2025" },
			wantErr: transaction.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := txn.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionDelta(t *testing.T) {
	amount := decimal.RequireFromString("500000")

	income := Transaction{Type: "income", Amount: amount}
	if got := income.Delta(); got.String() != "500000" {
		t.Fatalf("income Delta() = %s, want 500000", got.String())
	}

	expense := Transaction{Type: "expense", Amount: amount}
	if got := expense.Delta(); got.String() != "-500000" {
		t.Fatalf("expense Delta() = %s, want -500000", got.String())
	}
}
