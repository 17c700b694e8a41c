package transactionService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/transaction"
	transactionRepository "FiscalGolang/internal/api/transaction/repository"
	"FiscalGolang/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	transactions map[string]entity.Transaction
	accounts     map[string]entity.Account
	categories   map[string]entity.Category
}

type fakeRepository struct {
	store     *fakeStore
	commits   int
	rollbacks int
}

func (f *fakeRepository) NewClient(tx bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transactions: &fakeTransactions{store: f.store},
		Accounts:     &fakeAccounts{store: f.store},
		Categories:   &fakeCategories{store: f.store},
		Commit:       func() error { f.commits++; return nil },
		Rollback:     func() error { f.rollbacks++; return nil },
	}, nil
}

type fakeTransactions struct {
	store *fakeStore
}

func (f *fakeTransactions) Create(_ context.Context, txn entity.Transaction) error {
	f.store.transactions[txn.ID] = txn
	return nil
}

func (f *fakeTransactions) GetByID(_ context.Context, id string, userID string) (entity.Transaction, error) {
	txn, ok := f.store.transactions[id]
	if !ok || txn.UserID != userID {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return txn, nil
}

func (f *fakeTransactions) GetAll(_ context.Context, filter transaction.ListTransactionsRequest) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, txn := range f.store.transactions {
		if txn.UserID != filter.UserID {
			continue
		}
		if filter.AccountID != "" && txn.AccountID != filter.AccountID {
			continue
		}
		if filter.CategoryID != "" && txn.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		result = append(result, txn)
	}
	return result, nil
}

func (f *fakeTransactions) Update(_ context.Context, txn entity.Transaction) error {
	if _, ok := f.store.transactions[txn.ID]; !ok {
		return transaction.ErrTransactionNotFound
	}
	f.store.transactions[txn.ID] = txn
	return nil
}

func (f *fakeTransactions) Delete(_ context.Context, id string, userID string) error {
	txn, ok := f.store.transactions[id]
	if !ok || txn.UserID != userID {
		return transaction.ErrTransactionNotFound
	}
	delete(f.store.transactions, id)
	return nil
}

type fakeAccounts struct {
	store *fakeStore
}

func (f *fakeAccounts) GetForUpdate(_ context.Context, id string, userID string) (entity.Account, error) {
	acc, ok := f.store.accounts[id]
	if !ok || acc.UserID != userID {
		return entity.Account{}, transaction.ErrAccountNotFound
	}
	return acc, nil
}

func (f *fakeAccounts) UpdateBalance(_ context.Context, id string, balance decimal.Decimal) error {
	acc, ok := f.store.accounts[id]
	if !ok {
		return transaction.ErrAccountNotFound
	}
	acc.Balance = balance
	f.store.accounts[id] = acc
	return nil
}

type fakeCategories struct {
	store *fakeStore
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (entity.Category, error) {
	cat, ok := f.store.categories[id]
	if !ok {
		return entity.Category{}, transaction.ErrCategoryNotFound
	}
	return cat, nil
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

func newTestService(store *fakeStore) (ITransactionService, *fakeRepository) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeRepository{store: store}
	return NewTransactionService(logger, repo, &fakeUtils{}), repo
}

func newStore() *fakeStore {
	return &fakeStore{
		transactions: make(map[string]entity.Transaction),
		accounts:     make(map[string]entity.Account),
		categories:   make(map[string]entity.Category),
	}
}

func seedAccount(store *fakeStore, id, userID, balance string) {
	store.accounts[id] = entity.Account{
		ID:       id,
		UserID:   userID,
		Name:     "Main",
		Type:     "bank",
		Balance:  decimal.RequireFromString(balance),
		Currency: "IDR",
		IsActive: true,
	}
}

func seedCategory(store *fakeStore, id, userID, catType string, system bool) {
	store.categories[id] = entity.Category{
		ID:       id,
		UserID:   userID,
		Name:     "Category " + id,
		Type:     catType,
		IsSystem: system,
	}
}

func TestCreateTransactionBalanceSequence(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-exp", "", "expense", true)
	seedCategory(store, "cat-inc", "", "income", true)

	svc, repo := newTestService(store)
	ctx := context.Background()

	steps := []struct {
		categoryID string
		txnType    string
		amount     string
		want       string
	}{
		{categoryID: "cat-exp", txnType: "expense", amount: "250000", want: "750000"},
		{categoryID: "cat-inc", txnType: "income", amount: "500000", want: "1250000"},
		{categoryID: "cat-inc", txnType: "income", amount: "250000", want: "1500000"},
	}

	for i, step := range steps {
		_, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
			UserID:     "user-1",
			AccountID:  "acc-1",
			CategoryID: step.categoryID,
			Type:       step.txnType,
			Amount:     step.amount,
			Date:       "2025-01-15",
		})
		if err != nil {
			t.Fatalf("step %d: CreateTransaction err: %v", i, err)
		}
		if got := store.accounts["acc-1"].Balance.String(); got != step.want {
			t.Fatalf("step %d: balance = %s, want %s", i, got, step.want)
		}
	}

	if repo.commits != len(steps) {
		t.Fatalf("commits = %d, want %d", repo.commits, len(steps))
	}
	if repo.rollbacks != 0 {
		t.Fatalf("rollbacks = %d, want 0", repo.rollbacks)
	}
}

func TestCreateTransactionRejectsNonPositiveAmounts(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-exp", "", "expense", true)

	svc, _ := newTestService(store)
	ctx := context.Background()

	for _, amount := range []string{"0", "-50", "abc"} {
		_, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
			UserID:     "user-1",
			AccountID:  "acc-1",
			CategoryID: "cat-exp",
			Type:       "expense",
			Amount:     amount,
			Date:       "2025-01-15",
		})
		if !errors.Is(err, transaction.ErrInvalidAmount) {
			t.Fatalf("amount %q: err = %v, want %v", amount, err, transaction.ErrInvalidAmount)
		}
	}

	if got := store.accounts["acc-1"].Balance.String(); got != "1000000" {
		t.Fatalf("balance moved to %s on rejected postings", got)
	}
	if len(store.transactions) != 0 {
		t.Fatalf("rejected postings left %d rows", len(store.transactions))
	}
}

func TestCreateTransactionCategoryTypeMismatch(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-inc", "", "income", true)

	svc, _ := newTestService(store)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-1",
		CategoryID: "cat-inc",
		Type:       "expense",
		Amount:     "100",
		Date:       "2025-01-15",
	})
	if !errors.Is(err, transaction.ErrCategoryTypeMismatch) {
		t.Fatalf("err = %v, want %v", err, transaction.ErrCategoryTypeMismatch)
	}
}

func TestCreateTransactionForeignCategoryReadsAsMissing(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-other", "user-2", "expense", false)

	svc, _ := newTestService(store)

	_, err := svc.CreateTransaction(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-1",
		CategoryID: "cat-other",
		Type:       "expense",
		Amount:     "100",
		Date:       "2025-01-15",
	})
	if !errors.Is(err, transaction.ErrCategoryNotFound) {
		t.Fatalf("err = %v, want %v", err, transaction.ErrCategoryNotFound)
	}
}

func TestUpdateTransactionSameAccountAdjustsByDifference(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-exp", "", "expense", true)

	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-1",
		CategoryID: "cat-exp",
		Type:       "expense",
		Amount:     "250000",
		Date:       "2025-01-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction err: %v", err)
	}

	_, err = svc.UpdateTransaction(ctx, transaction.UpdateTransactionRequest{
		ID:     created.ID,
		UserID: "user-1",
		Amount: "100000",
	})
	if err != nil {
		t.Fatalf("UpdateTransaction err: %v", err)
	}

	if got := store.accounts["acc-1"].Balance.String(); got != "900000" {
		t.Fatalf("balance = %s, want 900000", got)
	}
}

func TestUpdateTransactionMovesDeltaAcrossAccounts(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-a", "user-1", "1000000")
	seedAccount(store, "acc-b", "user-1", "500000")
	seedCategory(store, "cat-exp", "", "expense", true)

	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-a",
		CategoryID: "cat-exp",
		Type:       "expense",
		Amount:     "200000",
		Date:       "2025-01-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction err: %v", err)
	}
	if got := store.accounts["acc-a"].Balance.String(); got != "800000" {
		t.Fatalf("acc-a after posting = %s, want 800000", got)
	}

	_, err = svc.UpdateTransaction(ctx, transaction.UpdateTransactionRequest{
		ID:        created.ID,
		UserID:    "user-1",
		AccountID: "acc-b",
	})
	if err != nil {
		t.Fatalf("UpdateTransaction err: %v", err)
	}

	if got := store.accounts["acc-a"].Balance.String(); got != "1000000" {
		t.Fatalf("acc-a after reassignment = %s, want 1000000", got)
	}
	if got := store.accounts["acc-b"].Balance.String(); got != "300000" {
		t.Fatalf("acc-b after reassignment = %s, want 300000", got)
	}
}

func TestDeleteTransactionRevertsDelta(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-inc", "", "income", true)

	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-1",
		CategoryID: "cat-inc",
		Type:       "income",
		Amount:     "500000",
		Date:       "2025-01-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction err: %v", err)
	}
	if got := store.accounts["acc-1"].Balance.String(); got != "1500000" {
		t.Fatalf("balance after posting = %s, want 1500000", got)
	}

	if err := svc.DeleteTransaction(ctx, created.ID, "user-1"); err != nil {
		t.Fatalf("DeleteTransaction err: %v", err)
	}

	if got := store.accounts["acc-1"].Balance.String(); got != "1000000" {
		t.Fatalf("balance after void = %s, want 1000000", got)
	}
	if len(store.transactions) != 0 {
		t.Fatalf("void left %d rows", len(store.transactions))
	}
}

func TestCrossOwnerAccessReadsAsMissing(t *testing.T) {
	store := newStore()
	seedAccount(store, "acc-1", "user-1", "1000000")
	seedCategory(store, "cat-inc", "", "income", true)

	svc, _ := newTestService(store)
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:     "user-1",
		AccountID:  "acc-1",
		CategoryID: "cat-inc",
		Type:       "income",
		Amount:     "500000",
		Date:       "2025-01-15",
	})
	if err != nil {
		t.Fatalf("CreateTransaction err: %v", err)
	}

	if _, err := svc.GetTransactionByID(ctx, created.ID, "user-2"); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("cross-owner read err = %v, want %v", err, transaction.ErrTransactionNotFound)
	}
	if err := svc.DeleteTransaction(ctx, created.ID, "user-2"); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("cross-owner void err = %v, want %v", err, transaction.ErrTransactionNotFound)
	}
	if got := store.accounts["acc-1"].Balance.String(); got != "1500000" {
		t.Fatalf("balance moved to %s on rejected cross-owner void", got)
	}
}
