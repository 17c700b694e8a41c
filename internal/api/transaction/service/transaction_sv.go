package transactionService

import (
	"FiscalGolang/internal/api/transaction"
	transactionRepository "FiscalGolang/internal/api/transaction/repository"
	"FiscalGolang/internal/entity"
	contextPkg "FiscalGolang/pkg/context"
	"FiscalGolang/pkg/money"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// CreateTransaction posts a transaction: the row insert and the account
// balance delta commit as one unit, or not at all. All validation reads
// happen before the first write.
func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (res entity.Transaction, err error) {
	requestID := contextPkg.GetRequestID(ctx)

	amount, err := money.ParsePositive(req.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount,
		}).Warn("Rejected non-positive or malformed amount")
		return entity.Transaction{}, transaction.ErrInvalidAmount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	txn := entity.Transaction{
		ID:          id,
		UserID:      req.UserID,
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      amount,
		Date:        req.Date,
		Description: req.Description,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := txn.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}
	defer s.rollbackOnError(repo, &err, requestID)

	if err = s.checkCategory(ctx, repo, req.CategoryID, req.UserID, req.Type); err != nil {
		return entity.Transaction{}, err
	}

	account, err := repo.Accounts.GetForUpdate(ctx, req.AccountID, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": req.AccountID,
			"error":      err.Error(),
		}).Warn("Failed to resolve account for posting")
		return entity.Transaction{}, err
	}

	if err = repo.Transactions.Create(ctx, txn); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	newBalance := account.Balance.Add(txn.Delta())
	if err = repo.Accounts.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Failed to apply balance delta")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit posting")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	txn, err := repo.Transactions.GetByID(ctx, id, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	return txn, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, req transaction.ListTransactionsRequest) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transactions.GetAll(ctx, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, err
	}

	return transactions, nil
}

// UpdateTransaction amends a posted transaction. The old delta is reverted
// on the old account and the new delta applied on the (possibly different)
// target account; type is never changed by this path. Both account rows are
// locked inside one database transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (res entity.Transaction, err error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}
	defer s.rollbackOnError(repo, &err, requestID)

	old, err := repo.Transactions.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Warn("Amend target transaction not found")
		return entity.Transaction{}, err
	}

	updated := old
	updated.UpdatedAt = time.Now()

	if req.AccountID != "" {
		updated.AccountID = req.AccountID
	}
	if req.CategoryID != "" {
		updated.CategoryID = req.CategoryID
	}
	if req.Amount != "" {
		amount, parseErr := money.ParsePositive(req.Amount)
		if parseErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"amount":     req.Amount,
			}).Warn("Rejected non-positive or malformed amount")
			err = transaction.ErrInvalidAmount
			return entity.Transaction{}, err
		}
		updated.Amount = amount
	}
	if req.Date != "" {
		updated.Date = req.Date
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	if err = updated.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid amended transaction data")
		return entity.Transaction{}, err
	}

	if updated.CategoryID != old.CategoryID {
		if err = s.checkCategory(ctx, repo, updated.CategoryID, req.UserID, old.Type); err != nil {
			return entity.Transaction{}, err
		}
	}

	oldAccount, err := repo.Accounts.GetForUpdate(ctx, old.AccountID, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": old.AccountID,
			"error":      err.Error(),
		}).Warn("Failed to resolve old account for amend")
		return entity.Transaction{}, err
	}

	if updated.AccountID == old.AccountID {
		finalBalance := oldAccount.Balance.Sub(old.Delta()).Add(updated.Delta())
		if err = repo.Accounts.UpdateBalance(ctx, oldAccount.ID, finalBalance); err != nil {
			return entity.Transaction{}, transaction.ErrUpdateTransaction
		}
	} else {
		newAccount, accErr := repo.Accounts.GetForUpdate(ctx, updated.AccountID, req.UserID)
		if accErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"account_id": updated.AccountID,
				"error":      accErr.Error(),
			}).Warn("Failed to resolve target account for amend")
			err = accErr
			return entity.Transaction{}, err
		}

		if err = repo.Accounts.UpdateBalance(ctx, oldAccount.ID, oldAccount.Balance.Sub(old.Delta())); err != nil {
			return entity.Transaction{}, transaction.ErrUpdateTransaction
		}
		if err = repo.Accounts.UpdateBalance(ctx, newAccount.ID, newAccount.Balance.Add(updated.Delta())); err != nil {
			return entity.Transaction{}, transaction.ErrUpdateTransaction
		}
	}

	if err = repo.Transactions.Update(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction row")
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return entity.Transaction{}, err
		}
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit amend")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return updated, nil
}

// DeleteTransaction voids a posted transaction, reverting its delta before
// removing the row, atomically.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) (err error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer s.rollbackOnError(repo, &err, requestID)

	txn, err := repo.Transactions.GetByID(ctx, id, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Void target transaction not found")
		return err
	}

	account, err := repo.Accounts.GetForUpdate(ctx, txn.AccountID, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": txn.AccountID,
			"error":      err.Error(),
		}).Warn("Failed to resolve account for void")
		return err
	}

	if err = repo.Accounts.UpdateBalance(ctx, account.ID, account.Balance.Sub(txn.Delta())); err != nil {
		return transaction.ErrDeleteTransaction
	}

	if err = repo.Transactions.Delete(ctx, id, userID); err != nil {
		return transaction.ErrDeleteTransaction
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit void")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

// checkCategory resolves the category, hides other users' categories behind
// NotFound, and enforces that the category type matches the transaction
// type.
func (s *transactionService) checkCategory(ctx context.Context, repo transactionRepository.Client, categoryID string, userID string, txnType string) error {
	requestID := contextPkg.GetRequestID(ctx)

	category, err := repo.Categories.GetByID(ctx, categoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Warn("Failed to resolve category")
		return err
	}

	if !category.VisibleTo(userID) {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": categoryID,
		}).Warn("Category not visible to caller")
		return transaction.ErrCategoryNotFound
	}

	if category.Type != txnType {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"category_id":   categoryID,
			"category_type": category.Type,
			"type":          txnType,
		}).Warn("Category type does not match transaction type")
		return transaction.ErrCategoryTypeMismatch
	}

	return nil
}

func (s *transactionService) rollbackOnError(repo transactionRepository.Client, err *error, requestID string) {
	if *err == nil {
		return
	}
	if rbErr := repo.Rollback(); rbErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      rbErr.Error(),
		}).Error("Failed to rollback")
	}
}
