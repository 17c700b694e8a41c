package account

import "FiscalGolang/pkg/response"

var (
	ErrAccountNotFound    = response.NewError(404, "account not found")
	ErrInvalidAccountType = response.NewError(400, "invalid account type")
	ErrInvalidBalance     = response.NewError(400, "invalid account balance")
	ErrInvalidCurrency    = response.NewError(400, "invalid currency code")
	ErrCreateAccount      = response.NewError(500, "failed to create account")
	ErrUpdateAccount      = response.NewError(500, "failed to update account")
	ErrDeleteAccount      = response.NewError(500, "failed to delete account")
)
