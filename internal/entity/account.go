package entity

import (
	"FiscalGolang/internal/api/account"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCash       AccountType = "cash"
	AccountTypeEWallet    AccountType = "e-wallet"
	AccountTypeCreditCard AccountType = "credit-card"
)

func IsValidAccountType(accountType string) bool {
	switch AccountType(accountType) {
	case AccountTypeBank, AccountTypeCash, AccountTypeEWallet, AccountTypeCreditCard:
		return true
	default:
		return false
	}
}

// Account is a named money container. Balance is only ever mutated through
// the transaction service, which keeps it equal to the signed sum of all
// live transactions posted against the account.
type Account struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a *Account) Validate() error {
	if !IsValidAccountType(a.Type) {
		return account.ErrInvalidAccountType
	}

	if len(a.Currency) != 3 {
		return account.ErrInvalidCurrency
	}

	return nil
}
