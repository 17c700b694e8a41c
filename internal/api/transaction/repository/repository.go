package transactionRepository

import (
	"FiscalGolang/internal/api/transaction"
	"FiscalGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// NewClient with tx=true is mandatory for every balance-mutating path:
// the transaction row and the account balance must commit or roll back
// together.
func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Accounts:     &accountBalanceRepository{q: sqlExecutor, log: r.log},
		Categories:   &categoryLookupRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Transactions interface {
		Create(ctx context.Context, txn entity.Transaction) error
		GetByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
		GetAll(ctx context.Context, filter transaction.ListTransactionsRequest) ([]entity.Transaction, error)
		Update(ctx context.Context, txn entity.Transaction) error
		Delete(ctx context.Context, id string, userID string) error
	}

	Accounts interface {
		GetForUpdate(ctx context.Context, id string, userID string) (entity.Account, error)
		UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	}

	Categories interface {
		GetByID(ctx context.Context, id string) (entity.Category, error)
	}

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type accountBalanceRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoryLookupRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
