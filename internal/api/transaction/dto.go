package transaction

type CreateTransactionRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	AccountID   string `json:"account_id" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Amount      string `json:"amount" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// UpdateTransactionRequest carries partial field changes. The transaction
// type is deliberately absent: direction is fixed at posting time.
type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	AccountID   string  `json:"account_id"`
	CategoryID  string  `json:"category_id"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

type ListTransactionsRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	AccountID  string `json:"account_id"`
	CategoryID string `json:"category_id"`
	Type       string `json:"type" validate:"omitempty,oneof=income expense"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	AccountID   string `json:"account_id"`
	CategoryID  string `json:"category_id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
