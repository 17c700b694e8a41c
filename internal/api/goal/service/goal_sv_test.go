package goalService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/goal"
	goalRepository "FiscalGolang/internal/api/goal/repository"
	"FiscalGolang/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	goals map[string]entity.Goal
}

type fakeRepository struct {
	store     *fakeStore
	commits   int
	rollbacks int
}

func (f *fakeRepository) NewClient(tx bool) (goalRepository.Client, error) {
	return goalRepository.Client{
		Goals:    &fakeGoals{store: f.store},
		Commit:   func() error { f.commits++; return nil },
		Rollback: func() error { f.rollbacks++; return nil },
	}, nil
}

type fakeGoals struct {
	store *fakeStore
}

func (f *fakeGoals) Create(_ context.Context, g entity.Goal) error {
	f.store.goals[g.ID] = g
	return nil
}

func (f *fakeGoals) GetByID(_ context.Context, id string, userID string) (entity.Goal, error) {
	g, ok := f.store.goals[id]
	if !ok || g.UserID != userID {
		return entity.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}

func (f *fakeGoals) GetForUpdate(ctx context.Context, id string, userID string) (entity.Goal, error) {
	return f.GetByID(ctx, id, userID)
}

func (f *fakeGoals) GetAll(_ context.Context, userID string) ([]entity.Goal, error) {
	var result []entity.Goal
	for _, g := range f.store.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeGoals) Update(_ context.Context, g entity.Goal) error {
	if _, ok := f.store.goals[g.ID]; !ok {
		return goal.ErrGoalNotFound
	}
	f.store.goals[g.ID] = g
	return nil
}

func (f *fakeGoals) Delete(_ context.Context, id string, userID string) error {
	g, ok := f.store.goals[id]
	if !ok || g.UserID != userID {
		return goal.ErrGoalNotFound
	}
	delete(f.store.goals, id)
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

func newTestService(store *fakeStore) (IGoalService, *fakeRepository) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeRepository{store: store}
	return NewGoalService(logger, repo, &fakeUtils{}), repo
}

func newStore() *fakeStore {
	return &fakeStore{goals: make(map[string]entity.Goal)}
}

func seedGoal(store *fakeStore, id, userID, target, current string) {
	store.goals[id] = entity.Goal{
		ID:            id,
		UserID:        userID,
		Name:          "Holiday",
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
	}
}

func TestCreateGoalStartsEmpty(t *testing.T) {
	store := newStore()
	svc, _ := newTestService(store)

	created, err := svc.CreateGoal(context.Background(), goal.CreateGoalRequest{
		UserID:       "user-1",
		Name:         "Holiday",
		TargetAmount: "5000000",
	})
	if err != nil {
		t.Fatalf("CreateGoal err: %v", err)
	}

	if !created.CurrentAmount.IsZero() {
		t.Fatalf("new goal current = %s, want 0", created.CurrentAmount)
	}
	if created.IsCompleted {
		t.Fatal("new goal marked completed")
	}
}

func TestCreateGoalRejectsNonPositiveTarget(t *testing.T) {
	store := newStore()
	svc, _ := newTestService(store)

	for _, target := range []string{"0", "-100", "nope"} {
		_, err := svc.CreateGoal(context.Background(), goal.CreateGoalRequest{
			UserID:       "user-1",
			Name:         "Holiday",
			TargetAmount: target,
		})
		if !errors.Is(err, goal.ErrInvalidAmount) {
			t.Fatalf("target %q: err = %v, want %v", target, err, goal.ErrInvalidAmount)
		}
	}
}

func TestAddMoneyAccumulatesAndCompletes(t *testing.T) {
	store := newStore()
	seedGoal(store, "goal-1", "user-1", "1000000", "0")

	svc, repo := newTestService(store)
	ctx := context.Background()

	first, err := svc.AddMoney(ctx, goal.AddMoneyRequest{
		ID:     "goal-1",
		UserID: "user-1",
		Amount: "400000",
	})
	if err != nil {
		t.Fatalf("AddMoney err: %v", err)
	}
	if got := first.CurrentAmount.String(); got != "400000" {
		t.Fatalf("current after first deposit = %s, want 400000", got)
	}
	if first.IsCompleted {
		t.Fatal("goal completed before reaching the target")
	}

	second, err := svc.AddMoney(ctx, goal.AddMoneyRequest{
		ID:     "goal-1",
		UserID: "user-1",
		Amount: "600000",
	})
	if err != nil {
		t.Fatalf("second AddMoney err: %v", err)
	}
	if got := second.CurrentAmount.String(); got != "1000000" {
		t.Fatalf("current after second deposit = %s, want 1000000", got)
	}
	if !second.IsCompleted {
		t.Fatal("goal not completed at the target")
	}

	if repo.commits != 2 {
		t.Fatalf("commits = %d, want 2", repo.commits)
	}
}

func TestAddMoneyRejectsNonPositiveAmount(t *testing.T) {
	store := newStore()
	seedGoal(store, "goal-1", "user-1", "1000000", "0")

	svc, _ := newTestService(store)

	for _, amount := range []string{"0", "-1"} {
		_, err := svc.AddMoney(context.Background(), goal.AddMoneyRequest{
			ID:     "goal-1",
			UserID: "user-1",
			Amount: amount,
		})
		if !errors.Is(err, goal.ErrInvalidAmount) {
			t.Fatalf("amount %q: err = %v, want %v", amount, err, goal.ErrInvalidAmount)
		}
	}

	if got := store.goals["goal-1"].CurrentAmount.String(); got != "0" {
		t.Fatalf("current moved to %s on rejected deposits", got)
	}
}

func TestAddMoneyForeignGoalReadsAsMissing(t *testing.T) {
	store := newStore()
	seedGoal(store, "goal-1", "user-1", "1000000", "0")

	svc, _ := newTestService(store)

	_, err := svc.AddMoney(context.Background(), goal.AddMoneyRequest{
		ID:     "goal-1",
		UserID: "user-2",
		Amount: "100",
	})
	if !errors.Is(err, goal.ErrGoalNotFound) {
		t.Fatalf("err = %v, want %v", err, goal.ErrGoalNotFound)
	}
}

func TestUpdateGoalLoweringTargetCompletes(t *testing.T) {
	store := newStore()
	seedGoal(store, "goal-1", "user-1", "1000000", "800000")

	svc, _ := newTestService(store)

	updated, err := svc.UpdateGoal(context.Background(), goal.UpdateGoalRequest{
		ID:           "goal-1",
		UserID:       "user-1",
		TargetAmount: "750000",
	})
	if err != nil {
		t.Fatalf("UpdateGoal err: %v", err)
	}
	if !updated.IsCompleted {
		t.Fatal("goal not completed after target dropped below saved progress")
	}
}
