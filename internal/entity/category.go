package entity

import (
	"time"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

func IsValidCategoryType(categoryType string) bool {
	switch CategoryType(categoryType) {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

// Category classifies transactions. System categories carry no owner, are
// visible to every user and are immutable through the API.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsSystem  bool      `json:"is_system"`
	CreatedAt time.Time `json:"created_at"`
}

// VisibleTo reports whether the category can be read by the given user.
func (c *Category) VisibleTo(userID string) bool {
	return c.IsSystem || c.UserID == userID
}
