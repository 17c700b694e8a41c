package transaction

import "FiscalGolang/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrAccountNotFound        = response.NewError(404, "account not found")
	ErrCategoryNotFound       = response.NewError(404, "category not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidDate            = response.NewError(400, "invalid transaction date")
	ErrCategoryTypeMismatch   = response.NewError(400, "category type does not match transaction type")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
)
