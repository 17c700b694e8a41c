package budgetRepository

import (
	"FiscalGolang/internal/api/budget"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	CategoryID sql.NullString `db:"category_id"`
	Amount     sql.NullString `db:"amount"`
	Period     sql.NullString `db:"period"`
	StartDate  sql.NullString `db:"start_date"`
	EndDate    sql.NullString `db:"end_date"`
	IsActive   bool           `db:"is_active"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *budgetRepository) Create(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          b.ID,
		"user_id":     b.UserID,
		"category_id": b.CategoryID,
		"amount":      b.Amount.String(),
		"period":      b.Period,
		"start_date":  b.StartDate,
		"end_date":    b.EndDate,
		"is_active":   b.IsActive,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create budget")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": b.CategoryID,
			}).Warn("Budget references a category that does not exist")
			return budget.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return err
	}

	return nil
}

func (r *budgetRepository) GetByID(c context.Context, id string, userID string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID no budget found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b)
}

func (r *budgetRepository) GetAll(c context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		made, err := r.makeBudget(b)
		if err != nil {
			return nil, err
		}
		result = append(result, made)
	}

	return result, nil
}

func (r *budgetRepository) Update(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         b.ID,
		"user_id":    b.UserID,
		"amount":     b.Amount.String(),
		"period":     b.Period,
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"is_active":  b.IsActive,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
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
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteBudget, argsKV)
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
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *spendingRepository) SumExpenses(c context.Context, userID string, categoryID string, startDate string, endDate string) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)
	var amounts []string

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"start_date":  startDate,
		"end_date":    endDate,
	}

	query, args, err := sqlx.Named(queryGetExpenseAmounts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumExpenses named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &amounts, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumExpenses execution err")
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, raw := range amounts {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"amount":     raw,
			}).Error("Stored transaction amount is not a valid decimal")
			return decimal.Zero, budget.ErrInvalidAmount
		}
		spent = spent.Add(amount)
	}

	return spent, nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) (entity.Budget, error) {
	amount, err := decimal.NewFromString(b.Amount.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"id":     b.ID.String,
			"amount": b.Amount.String,
		}).Error("Stored budget amount is not a valid decimal")
		return entity.Budget{}, budget.ErrInvalidAmount
	}

	return entity.Budget{
		ID:         b.ID.String,
		UserID:     b.UserID.String,
		CategoryID: b.CategoryID.String,
		Amount:     amount,
		Period:     b.Period.String,
		StartDate:  b.StartDate.String,
		EndDate:    b.EndDate.String,
		IsActive:   b.IsActive,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}, nil
}
