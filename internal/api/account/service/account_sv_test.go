package accountService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/account"
	accountRepository "FiscalGolang/internal/api/account/repository"
	"FiscalGolang/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	accounts map[string]entity.Account
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (accountRepository.Client, error) {
	return accountRepository.Client{
		Accounts: &fakeAccounts{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeAccounts struct {
	store *fakeStore
}

func (f *fakeAccounts) Create(_ context.Context, a entity.Account) error {
	f.store.accounts[a.ID] = a
	return nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id string, userID string) (entity.Account, error) {
	a, ok := f.store.accounts[id]
	if !ok || a.UserID != userID {
		return entity.Account{}, account.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeAccounts) GetAll(_ context.Context, userID string) ([]entity.Account, error) {
	var result []entity.Account
	for _, a := range f.store.accounts {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAccounts) GetActive(_ context.Context, userID string) ([]entity.Account, error) {
	var result []entity.Account
	for _, a := range f.store.accounts {
		if a.UserID == userID && a.IsActive {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAccounts) Update(_ context.Context, a entity.Account) error {
	stored, ok := f.store.accounts[a.ID]
	if !ok || stored.UserID != a.UserID {
		return account.ErrAccountNotFound
	}
	// balance and currency stay as stored, matching the SQL update
	a.Balance = stored.Balance
	a.Currency = stored.Currency
	f.store.accounts[a.ID] = a
	return nil
}

func (f *fakeAccounts) Delete(_ context.Context, id string, userID string) error {
	a, ok := f.store.accounts[id]
	if !ok || a.UserID != userID {
		return account.ErrAccountNotFound
	}
	delete(f.store.accounts, id)
	return nil
}

type fakeUtils struct {
	n int
}

func (f *fakeUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("01TESTULID%016d", f.n), nil
}

func (f *fakeUtils) ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	return err
}

func newTestService(store *fakeStore) IAccountService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAccountService(logger, &fakeRepository{store: store}, &fakeUtils{})
}

func newStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]entity.Account)}
}

func seedAccount(store *fakeStore, id, userID, balance string, active bool) {
	store.accounts[id] = entity.Account{
		ID:       id,
		UserID:   userID,
		Name:     "Account " + id,
		Type:     "bank",
		Balance:  decimal.RequireFromString(balance),
		Currency: "IDR",
		IsActive: active,
	}
}

func TestCreateAccountDefaults(t *testing.T) {
	store := newStore()
	svc := newTestService(store)

	created, err := svc.CreateAccount(context.Background(), account.CreateAccountRequest{
		UserID: "user-1",
		Name:   "Wallet",
		Type:   "cash",
	})
	if err != nil {
		t.Fatalf("CreateAccount err: %v", err)
	}

	if !created.Balance.IsZero() {
		t.Fatalf("default balance = %s, want 0", created.Balance)
	}
	if created.Currency != "IDR" {
		t.Fatalf("default currency = %s, want IDR", created.Currency)
	}
	if !created.IsActive {
		t.Fatal("new account should start active")
	}
}

func TestCreateAccountRejectsBadInput(t *testing.T) {
	store := newStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, account.CreateAccountRequest{
		UserID: "user-1",
		Name:   "Wallet",
		Type:   "crypto",
	})
	if !errors.Is(err, account.ErrInvalidAccountType) {
		t.Fatalf("type err = %v, want %v", err, account.ErrInvalidAccountType)
	}

	_, err = svc.CreateAccount(ctx, account.CreateAccountRequest{
		UserID:  "user-1",
		Name:    "Wallet",
		Type:    "cash",
		Balance: "not-a-number",
	})
	if !errors.Is(err, account.ErrInvalidBalance) {
		t.Fatalf("balance err = %v, want %v", err, account.ErrInvalidBalance)
	}

	_, err = svc.CreateAccount(ctx, account.CreateAccountRequest{
		UserID:   "user-1",
		Name:     "Wallet",
		Type:     "cash",
		Currency: "RUPIAH",
	})
	if !errors.Is(err, account.ErrInvalidCurrency) {
		t.Fatalf("currency err = %v, want %v", err, account.ErrInvalidCurrency)
	}
}

func TestUpdateAccountNeverTouchesBalance(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "750000", true)

	svc := newTestService(store)

	updated, err := svc.UpdateAccount(context.Background(), account.UpdateAccountRequest{
		ID:     "acc-1",
		UserID: "user-1",
		Name:   "Renamed",
	})
	if err != nil {
		t.Fatalf("UpdateAccount err: %v", err)
	}

	if updated.Name != "Renamed" {
		t.Fatalf("name = %s, want Renamed", updated.Name)
	}
	if got := store.accounts["acc-1"].Balance.String(); got != "750000" {
		t.Fatalf("balance changed to %s through profile update", got)
	}
}

func TestGetTotalBalanceSumsActiveAccountsOnly(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000", true)
	seedAccount(store, "acc-2", "user-1", "250000.50", true)
	seedAccount(store, "acc-3", "user-1", "999999", false)
	seedAccount(store, "acc-4", "user-2", "500000", true)

	svc := newTestService(store)

	total, err := svc.GetTotalBalance(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetTotalBalance err: %v", err)
	}

	if got := total.String(); got != "1250000.5" {
		t.Fatalf("total = %s, want 1250000.5", got)
	}
}

func TestAccountCrossOwnerReadsAsMissing(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000", true)

	svc := newTestService(store)

	if _, err := svc.GetAccountByID(context.Background(), "acc-1", "user-2"); !errors.Is(err, account.ErrAccountNotFound) {
		t.Fatalf("err = %v, want %v", err, account.ErrAccountNotFound)
	}
}
