package account

type CreateAccountRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=bank cash e-wallet credit-card"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

type UpdateAccountRequest struct {
	ID       string `json:"id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	Name     string `json:"name"`
	Type     string `json:"type" validate:"omitempty,oneof=bank cash e-wallet credit-card"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"is_active"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type TotalBalanceResponse struct {
	Total string `json:"total"`
}
