package budgetRepository

import (
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
		Budgets:  &budgetRepository{q: sqlExecutor, log: r.log},
		Spending: &spendingRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Budgets interface {
		Create(ctx context.Context, budget entity.Budget) error
		GetByID(ctx context.Context, id string, userID string) (entity.Budget, error)
		GetAll(ctx context.Context, userID string) ([]entity.Budget, error)
		Update(ctx context.Context, budget entity.Budget) error
		Delete(ctx context.Context, id string, userID string) error
	}

	// Spending scans the transaction window a budget covers. The sum is
	// computed in Go with exact decimals; TEXT-typed amounts are never
	// aggregated in SQL.
	Spending interface {
		SumExpenses(ctx context.Context, userID string, categoryID string, startDate string, endDate string) (decimal.Decimal, error)
	}

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type spendingRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
