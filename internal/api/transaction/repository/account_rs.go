package transactionRepository

import (
	"FiscalGolang/internal/api/transaction"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Type      sql.NullString `db:"type"`
	Balance   sql.NullString `db:"balance"`
	Currency  sql.NullString `db:"currency"`
	Color     sql.NullString `db:"color"`
	Icon      sql.NullString `db:"icon"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// GetForUpdate locks the account row for the remainder of the enclosing
// database transaction, serializing concurrent balance updates against
// the same account.
func (r *accountBalanceRepository) GetForUpdate(c context.Context, id string, userID string) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var account AccountDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetAccountForUpdate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetForUpdate named query preparation err")
		return entity.Account{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"account_id": id,
			}).Warn("GetForUpdate no rows found")
			return entity.Account{}, transaction.ErrAccountNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetForUpdate execution err")
		return entity.Account{}, err
	}

	balance, err := decimal.NewFromString(account.Balance.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": id,
			"balance":    account.Balance.String,
		}).Error("Stored account balance is not a valid decimal")
		return entity.Account{}, transaction.ErrInvalidAmount
	}

	return entity.Account{
		ID:        account.ID.String,
		UserID:    account.UserID.String,
		Name:      account.Name.String,
		Type:      account.Type.String,
		Balance:   balance,
		Currency:  account.Currency.String,
		Color:     account.Color.String,
		Icon:      account.Icon.String,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}, nil
}

func (r *accountBalanceRepository) UpdateBalance(c context.Context, id string, balance decimal.Decimal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"balance":    balance.String(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAccountBalance, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBalance named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBalance execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBalance rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": id,
		}).Warn("UpdateBalance no rows affected")
		return transaction.ErrAccountNotFound
	}

	return nil
}

func (r *categoryLookupRepository) GetByID(c context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var category CategoryDB

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

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": id,
			}).Warn("GetByID no category found")
			return entity.Category{}, transaction.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Category{}, err
	}

	return entity.Category{
		ID:        category.ID.String,
		UserID:    category.UserID.String,
		Name:      category.Name.String,
		Type:      category.Type.String,
		Icon:      category.Icon.String,
		Color:     category.Color.String,
		IsSystem:  category.IsSystem,
		CreatedAt: category.CreatedAt,
	}, nil
}

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
