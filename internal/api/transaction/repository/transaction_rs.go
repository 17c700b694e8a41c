package transactionRepository

import (
	"FiscalGolang/internal/api/transaction"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	AccountID   sql.NullString `db:"account_id"`
	CategoryID  sql.NullString `db:"category_id"`
	Type        sql.NullString `db:"type"`
	Amount      sql.NullString `db:"amount"`
	Date        sql.NullString `db:"date"`
	Description sql.NullString `db:"description"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *transactionRepository) Create(c context.Context, txn entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          txn.ID,
		"user_id":     txn.UserID,
		"account_id":  txn.AccountID,
		"category_id": txn.CategoryID,
		"type":        txn.Type,
		"amount":      txn.Amount.String(),
		"date":        txn.Date,
		"description": txn.Description,
		"notes":       txn.Notes,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create transaction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")

		return err
	}

	return nil
}

func (r *transactionRepository) GetByID(c context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var txn TransactionDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&txn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(txn)
}

func (r *transactionRepository) GetAll(c context.Context, filter transaction.ListTransactionsRequest) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []TransactionDB

	conditions := []string{"user_id = :user_id"}
	argsKV := map[string]interface{}{
		"user_id": filter.UserID,
		"limit":   filter.Limit,
		"offset":  filter.Offset,
	}

	if filter.AccountID != "" {
		conditions = append(conditions, "account_id = :account_id")
		argsKV["account_id"] = filter.AccountID
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		argsKV["category_id"] = filter.CategoryID
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = :type")
		argsKV["type"] = filter.Type
	}
	if filter.StartDate != "" {
		conditions = append(conditions, "date >= :start_date")
		argsKV["start_date"] = filter.StartDate
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "date <= :end_date")
		argsKV["end_date"] = filter.EndDate
	}

	queryToUse := fmt.Sprintf(queryGetTransactionsFmt, strings.Join(conditions, " AND "))

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		made, err := r.makeTransaction(txn)
		if err != nil {
			return nil, err
		}
		result = append(result, made)
	}

	return result, nil
}

func (r *transactionRepository) Update(c context.Context, txn entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          txn.ID,
		"user_id":     txn.UserID,
		"account_id":  txn.AccountID,
		"category_id": txn.CategoryID,
		"amount":      txn.Amount.String(),
		"date":        txn.Date,
		"description": txn.Description,
		"notes":       txn.Notes,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
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
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Update no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
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
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) makeTransaction(txn TransactionDB) (entity.Transaction, error) {
	amount, err := decimal.NewFromString(txn.Amount.String)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"id":     txn.ID.String,
			"amount": txn.Amount.String,
		}).Error("Stored transaction amount is not a valid decimal")
		return entity.Transaction{}, transaction.ErrInvalidAmount
	}

	return entity.Transaction{
		ID:          txn.ID.String,
		UserID:      txn.UserID.String,
		AccountID:   txn.AccountID.String,
		CategoryID:  txn.CategoryID.String,
		Type:        txn.Type.String,
		Amount:      amount,
		Date:        txn.Date.String,
		Description: txn.Description.String,
		Notes:       txn.Notes.String,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}, nil
}
