package entity

import (
	"FiscalGolang/internal/api/transaction"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction is a single dated monetary event. Amount is always strictly
// positive; direction is carried by Type. Date is a plain calendar date in
// YYYY-MM-DD form with no time component.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	AccountID   string          `json:"account_id"`
	CategoryID  string          `json:"category_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() {
		return transaction.ErrInvalidAmount
	}

	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return transaction.ErrInvalidDate
	}

	return nil
}

// Delta is the signed amount the transaction applies to its account
// balance: positive for income, negative for expense.
func (t *Transaction) Delta() decimal.Decimal {
	if TransactionType(t.Type) == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
