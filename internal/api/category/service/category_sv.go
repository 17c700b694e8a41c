package categoryService

import (
	"FiscalGolang/internal/api/category"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidCategoryType(req.Type) {
		return entity.Category{}, category.ErrInvalidCategoryType
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Category{}, err
	}

	cat := entity.Category{
		ID:        id,
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		Icon:      req.Icon,
		Color:     req.Color,
		IsSystem:  false,
		CreatedAt: time.Now(),
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	if err := repo.Categories.Create(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return entity.Category{}, category.ErrCreateCategory
	}

	return cat, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	cat, err := repo.Categories.GetByID(ctx, id)
	if err != nil {
		return entity.Category{}, err
	}

	// a foreign row reads as missing, never as forbidden
	if !cat.VisibleTo(userID) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Category not visible to caller")
		return entity.Category{}, category.ErrCategoryNotFound
	}

	return cat, nil
}

func (s *categoryService) GetCategories(ctx context.Context, userID string, categoryType string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if categoryType != "" && !entity.IsValidCategoryType(categoryType) {
		return nil, category.ErrInvalidCategoryType
	}

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if categoryType != "" {
		return repo.Categories.GetByType(ctx, userID, categoryType)
	}

	return repo.Categories.GetAll(ctx, userID)
}

// UpdateCategory only touches cosmetic fields. The type is immutable so
// budgets and historical transactions keep a consistent direction.
func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	cat, err := repo.Categories.GetByID(ctx, req.ID)
	if err != nil {
		return entity.Category{}, err
	}

	if cat.IsSystem {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Rejected update of a system category")
		return entity.Category{}, category.ErrSystemCategory
	}

	if cat.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Category not visible to caller")
		return entity.Category{}, category.ErrCategoryNotFound
	}

	if req.Name != "" {
		cat.Name = req.Name
	}
	if req.Icon != "" {
		cat.Icon = req.Icon
	}
	if req.Color != "" {
		cat.Color = req.Color
	}

	if err := repo.Categories.Update(ctx, cat); err != nil {
		if err == category.ErrCategoryNotFound {
			return entity.Category{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return entity.Category{}, category.ErrUpdateCategory
	}

	return cat, nil
}

// DeleteCategory refuses to orphan transactions: a category with any
// postings against it cannot be removed.
func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	cat, err := repo.Categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if cat.IsSystem {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Rejected deletion of a system category")
		return category.ErrSystemCategory
	}

	if cat.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Category not visible to caller")
		return category.ErrCategoryNotFound
	}

	count, err := repo.Categories.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"transactions": count,
		}).Warn("Rejected deletion of a category in use")
		return category.ErrCategoryInUse
	}

	if err := repo.Categories.Delete(ctx, id, userID); err != nil {
		if err == category.ErrCategoryNotFound {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return category.ErrDeleteCategory
	}

	return nil
}
