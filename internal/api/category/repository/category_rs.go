package categoryRepository

import (
	"FiscalGolang/internal/api/category"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Type      sql.NullString `db:"type"`
	Icon      sql.NullString `db:"icon"`
	Color     sql.NullString `db:"color"`
	IsSystem  bool           `db:"is_system"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *categoryRepository) Create(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)

	// system rows keep a NULL owner so they survive user deletion
	var userID interface{}
	if cat.UserID != "" {
		userID = cat.UserID
	}

	argsKV := map[string]interface{}{
		"id":         cat.ID,
		"user_id":    userID,
		"name":       cat.Name,
		"type":       cat.Type,
		"icon":       cat.Icon,
		"color":      cat.Color,
		"is_system":  cat.IsSystem,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create category")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

// GetByID intentionally skips owner filtering; visibility is decided by
// the service so a cross-owner read and a missing row are
// indistinguishable to the caller.
func (r *categoryRepository) GetByID(c context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var cat CategoryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID no category found")
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Category{}, err
	}

	return makeCategory(cat), nil
}

func (r *categoryRepository) GetAll(c context.Context, userID string) ([]entity.Category, error) {
	return r.selectCategories(c, queryGetCategories, map[string]interface{}{
		"user_id": userID,
	})
}

func (r *categoryRepository) GetByType(c context.Context, userID string, categoryType string) ([]entity.Category, error) {
	return r.selectCategories(c, queryGetCategoriesByType, map[string]interface{}{
		"user_id": userID,
		"type":    categoryType,
	})
}

func (r *categoryRepository) selectCategories(c context.Context, baseQuery string, argsKV map[string]interface{}) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var categories []CategoryDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectCategories execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(categories))
	for _, cat := range categories {
		result = append(result, makeCategory(cat))
	}

	return result, nil
}

func (r *categoryRepository) Update(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      cat.ID,
		"user_id": cat.UserID,
		"name":    cat.Name,
		"icon":    cat.Icon,
		"color":   cat.Color,
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Update no rows affected")
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete no rows affected")
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) CountTransactions(c context.Context, categoryID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var count int

	argsKV := map[string]interface{}{
		"category_id": categoryID,
	}

	query, args, err := sqlx.Named(queryCountTransactionsByCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactions named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactions execution err")
		return 0, err
	}

	return count, nil
}

func makeCategory(cat CategoryDB) entity.Category {
	return entity.Category{
		ID:        cat.ID.String,
		UserID:    cat.UserID.String,
		Name:      cat.Name.String,
		Type:      cat.Type.String,
		Icon:      cat.Icon.String,
		Color:     cat.Color.String,
		IsSystem:  cat.IsSystem,
		CreatedAt: cat.CreatedAt,
	}
}
