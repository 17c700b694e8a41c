package budgetService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/budget"
	budgetRepository "FiscalGolang/internal/api/budget/repository"
	"FiscalGolang/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	budgets  map[string]entity.Budget
	expenses []entity.Transaction
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budgets:  &fakeBudgets{store: f.store},
		Spending: &fakeSpending{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBudgets struct {
	store *fakeStore
}

func (f *fakeBudgets) Create(_ context.Context, b entity.Budget) error {
	f.store.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgets) GetByID(_ context.Context, id string, userID string) (entity.Budget, error) {
	b, ok := f.store.budgets[id]
	if !ok || b.UserID != userID {
		return entity.Budget{}, budget.ErrBudgetNotFound
	}
	return b, nil
}

func (f *fakeBudgets) GetAll(_ context.Context, userID string) ([]entity.Budget, error) {
	var result []entity.Budget
	for _, b := range f.store.budgets {
		if b.UserID == userID && b.IsActive {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBudgets) Update(_ context.Context, b entity.Budget) error {
	if _, ok := f.store.budgets[b.ID]; !ok {
		return budget.ErrBudgetNotFound
	}
	f.store.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgets) Delete(_ context.Context, id string, userID string) error {
	b, ok := f.store.budgets[id]
	if !ok || b.UserID != userID {
		return budget.ErrBudgetNotFound
	}
	delete(f.store.budgets, id)
	return nil
}

type fakeSpending struct {
	store *fakeStore
}

func (f *fakeSpending) SumExpenses(_ context.Context, userID string, categoryID string, startDate string, endDate string) (decimal.Decimal, error) {
	spent := decimal.Zero
	for _, txn := range f.store.expenses {
		if txn.UserID != userID || txn.CategoryID != categoryID || txn.Type != "expense" {
			continue
		}
		if txn.Date < startDate || txn.Date > endDate {
			continue
		}
		spent = spent.Add(txn.Amount)
	}
	return spent, nil
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

func newTestService(store *fakeStore) IBudgetService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewBudgetService(logger, &fakeRepository{store: store}, &fakeUtils{})
}

func newStore() *fakeStore {
	return &fakeStore{budgets: make(map[string]entity.Budget)}
}

func seedBudget(store *fakeStore, id, userID, categoryID, amount string) {
	store.budgets[id] = entity.Budget{
		ID:         id,
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Period:     "monthly",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-31",
		IsActive:   true,
	}
}

func seedExpense(store *fakeStore, userID, categoryID, amount, date string) {
	store.expenses = append(store.expenses, entity.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       "expense",
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	})
}

func TestGetBudgetProgress(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "1000000")
	seedExpense(store, "user-1", "cat-food", "600000", "2025-01-10")
	seedExpense(store, "user-1", "cat-food", "350000", "2025-01-20")
	// outside the window, wrong category, wrong owner: all ignored
	seedExpense(store, "user-1", "cat-food", "999999", "2025-02-01")
	seedExpense(store, "user-1", "cat-transport", "100000", "2025-01-15")
	seedExpense(store, "user-2", "cat-food", "100000", "2025-01-15")

	svc := newTestService(store)

	b, progress, err := svc.GetBudgetProgress(context.Background(), "bud-1", "user-1")
	if err != nil {
		t.Fatalf("GetBudgetProgress err: %v", err)
	}

	if b.ID != "bud-1" {
		t.Fatalf("budget ID = %s, want bud-1", b.ID)
	}
	if got := progress.Spent.String(); got != "950000" {
		t.Fatalf("spent = %s, want 950000", got)
	}
	if got := progress.Remaining.String(); got != "50000" {
		t.Fatalf("remaining = %s, want 50000", got)
	}
	if progress.Percentage != "95.00" {
		t.Fatalf("percentage = %s, want 95.00", progress.Percentage)
	}
	if progress.IsOverBudget {
		t.Fatal("IsOverBudget = true for spend under the cap")
	}
}

func TestGetBudgetProgressOverBudget(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "100000")
	seedExpense(store, "user-1", "cat-food", "150000", "2025-01-10")

	svc := newTestService(store)

	_, progress, err := svc.GetBudgetProgress(context.Background(), "bud-1", "user-1")
	if err != nil {
		t.Fatalf("GetBudgetProgress err: %v", err)
	}

	if !progress.IsOverBudget {
		t.Fatal("IsOverBudget = false for spend over the cap")
	}
	if got := progress.Remaining.String(); got != "-50000" {
		t.Fatalf("remaining = %s, want -50000", got)
	}
	if progress.Percentage != "150.00" {
		t.Fatalf("percentage = %s, want 150.00", progress.Percentage)
	}
}

func TestGetBudgetProgressZeroAmount(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "0")
	seedExpense(store, "user-1", "cat-food", "50", "2025-01-10")

	svc := newTestService(store)

	_, progress, err := svc.GetBudgetProgress(context.Background(), "bud-1", "user-1")
	if err != nil {
		t.Fatalf("GetBudgetProgress err: %v", err)
	}

	if progress.Percentage != "0.00" {
		t.Fatalf("percentage = %s, want 0.00 for zero cap", progress.Percentage)
	}
	if !progress.IsOverBudget {
		t.Fatal("IsOverBudget = false for any spend against a zero cap")
	}
}

func TestGetBudgetProgressIsIdempotent(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "1000000")
	seedExpense(store, "user-1", "cat-food", "950000", "2025-01-10")

	svc := newTestService(store)
	ctx := context.Background()

	_, first, err := svc.GetBudgetProgress(ctx, "bud-1", "user-1")
	if err != nil {
		t.Fatalf("GetBudgetProgress err: %v", err)
	}
	_, second, err := svc.GetBudgetProgress(ctx, "bud-1", "user-1")
	if err != nil {
		t.Fatalf("second GetBudgetProgress err: %v", err)
	}

	if !first.Spent.Equal(second.Spent) || first.Percentage != second.Percentage {
		t.Fatalf("repeated reads diverged: %s/%s vs %s/%s",
			first.Spent, first.Percentage, second.Spent, second.Percentage)
	}
}

func TestGetBudgetProgressForeignBudgetReadsAsMissing(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "1000000")

	svc := newTestService(store)

	_, _, err := svc.GetBudgetProgress(context.Background(), "bud-1", "user-2")
	if !errors.Is(err, budget.ErrBudgetNotFound) {
		t.Fatalf("err = %v, want %v", err, budget.ErrBudgetNotFound)
	}
}

func TestCreateBudgetRejectsInvertedWindow(t *testing.T) {
	store := newStore()
	svc := newTestService(store)

	_, err := svc.CreateBudget(context.Background(), budget.CreateBudgetRequest{
		UserID:     "user-1",
		CategoryID: "cat-food",
		Amount:     "1000000",
		Period:     "monthly",
		StartDate:  "2025-01-31",
		EndDate:    "2025-01-01",
	})
	if !errors.Is(err, budget.ErrInvalidDateRange) {
		t.Fatalf("err = %v, want %v", err, budget.ErrInvalidDateRange)
	}
	if len(store.budgets) != 0 {
		t.Fatalf("rejected create left %d rows", len(store.budgets))
	}
}

func TestCreateBudgetDefaultsPeriodToMonthly(t *testing.T) {
	store := newStore()
	svc := newTestService(store)

	created, err := svc.CreateBudget(context.Background(), budget.CreateBudgetRequest{
		UserID:     "user-1",
		CategoryID: "cat-food",
		Amount:     "1000000",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-31",
	})
	if err != nil {
		t.Fatalf("CreateBudget err: %v", err)
	}
	if created.Period != "monthly" {
		t.Fatalf("period = %s, want monthly", created.Period)
	}
	if !created.IsActive {
		t.Fatal("new budget should start active")
	}
}

func TestUpdateBudgetCannotInvertWindow(t *testing.T) {
	store := newStore()
	seedBudget(store, "bud-1", "user-1", "cat-food", "1000000")

	svc := newTestService(store)

	_, err := svc.UpdateBudget(context.Background(), budget.UpdateBudgetRequest{
		ID:      "bud-1",
		UserID:  "user-1",
		EndDate: "2024-06-01",
	})
	if !errors.Is(err, budget.ErrInvalidDateRange) {
		t.Fatalf("err = %v, want %v", err, budget.ErrInvalidDateRange)
	}
	if got := store.budgets["bud-1"].EndDate; got != "2025-01-31" {
		t.Fatalf("stored end date changed to %s on rejected update", got)
	}
}
