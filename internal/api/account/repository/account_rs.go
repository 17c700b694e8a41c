package accountRepository

import (
	"FiscalGolang/internal/api/account"
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

func (r *accountRepository) Create(c context.Context, a entity.Account) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         a.ID,
		"user_id":    a.UserID,
		"name":       a.Name,
		"type":       a.Type,
		"balance":    a.Balance.String(),
		"currency":   a.Currency,
		"color":      a.Color,
		"icon":       a.Icon,
		"is_active":  a.IsActive,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAccount, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create account")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating account")
		return err
	}

	return nil
}

func (r *accountRepository) GetByID(c context.Context, id string, userID string) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var a AccountDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetAccountByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Account{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID no account found")
			return entity.Account{}, account.ErrAccountNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Account{}, err
	}

	return r.makeAccount(a)
}

func (r *accountRepository) GetAll(c context.Context, userID string) ([]entity.Account, error) {
	return r.selectAccounts(c, queryGetAccountsByUserID, userID)
}

func (r *accountRepository) GetActive(c context.Context, userID string) ([]entity.Account, error) {
	return r.selectAccounts(c, queryGetActiveAccountsByUserID, userID)
}

func (r *accountRepository) selectAccounts(c context.Context, baseQuery string, userID string) ([]entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var accounts []AccountDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectAccounts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &accounts, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectAccounts execution err")
		return nil, err
	}

	result := make([]entity.Account, 0, len(accounts))
	for _, a := range accounts {
		made, err := r.makeAccount(a)
		if err != nil {
			return nil, err
		}
		result = append(result, made)
	}

	return result, nil
}

// Update never writes balance or currency. Balance belongs to the
// transaction posting path; currency is fixed at creation.
func (r *accountRepository) Update(c context.Context, a entity.Account) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         a.ID,
		"user_id":    a.UserID,
		"name":       a.Name,
		"type":       a.Type,
		"color":      a.Color,
		"icon":       a.Icon,
		"is_active":  a.IsActive,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAccount, argsKV)
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
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteAccount, argsKV)
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
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) makeAccount(a AccountDB) (entity.Account, error) {
	balance, err := decimal.NewFromString(a.Balance.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"id":      a.ID.String,
			"balance": a.Balance.String,
		}).Error("Stored account balance is not a valid decimal")
		return entity.Account{}, account.ErrInvalidBalance
	}

	return entity.Account{
		ID:        a.ID.String,
		UserID:    a.UserID.String,
		Name:      a.Name.String,
		Type:      a.Type.String,
		Balance:   balance,
		Currency:  a.Currency.String,
		Color:     a.Color.String,
		Icon:      a.Icon.String,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}
