package category

type CreateCategoryRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=income expense"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type UpdateCategoryRequest struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon,omitempty"`
	Color     string `json:"color,omitempty"`
	IsSystem  bool   `json:"is_system"`
	CreatedAt string `json:"created_at"`
}
