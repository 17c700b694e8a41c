package category

import "FiscalGolang/pkg/response"

var (
	ErrCategoryNotFound    = response.NewError(404, "category not found")
	ErrInvalidCategoryType = response.NewError(400, "invalid category type")
	ErrSystemCategory      = response.NewError(403, "system categories cannot be modified")
	ErrCategoryInUse       = response.NewError(400, "category is referenced by existing transactions")
	ErrCreateCategory      = response.NewError(500, "failed to create category")
	ErrUpdateCategory      = response.NewError(500, "failed to update category")
	ErrDeleteCategory      = response.NewError(500, "failed to delete category")
)
