package accountRepository

import (
	"FiscalGolang/internal/entity"
	"github.com/jmoiron/sqlx"
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
		Accounts: &accountRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Accounts interface {
		Create(ctx context.Context, account entity.Account) error
		GetByID(ctx context.Context, id string, userID string) (entity.Account, error)
		GetAll(ctx context.Context, userID string) ([]entity.Account, error)
		GetActive(ctx context.Context, userID string) ([]entity.Account, error)
		Update(ctx context.Context, account entity.Account) error
		Delete(ctx context.Context, id string, userID string) error
	}

	Commit   func() error
	Rollback func() error
}

type accountRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
