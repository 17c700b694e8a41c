package categoryService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/category"
	categoryRepository "FiscalGolang/internal/api/category/repository"
	"FiscalGolang/internal/entity"

	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	categories       map[string]entity.Category
	transactionCount map[string]int
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Categories: &fakeCategories{store: f.store},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeCategories struct {
	store *fakeStore
}

func (f *fakeCategories) Create(_ context.Context, cat entity.Category) error {
	f.store.categories[cat.ID] = cat
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (entity.Category, error) {
	cat, ok := f.store.categories[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategories) GetAll(_ context.Context, userID string) ([]entity.Category, error) {
	var result []entity.Category
	for _, cat := range f.store.categories {
		if cat.IsSystem || cat.UserID == userID {
			result = append(result, cat)
		}
	}
	return result, nil
}

func (f *fakeCategories) GetByType(_ context.Context, userID string, categoryType string) ([]entity.Category, error) {
	var result []entity.Category
	for _, cat := range f.store.categories {
		if (cat.IsSystem || cat.UserID == userID) && cat.Type == categoryType {
			result = append(result, cat)
		}
	}
	return result, nil
}

func (f *fakeCategories) Update(_ context.Context, cat entity.Category) error {
	stored, ok := f.store.categories[cat.ID]
	if !ok || stored.IsSystem || stored.UserID != cat.UserID {
		return category.ErrCategoryNotFound
	}
	f.store.categories[cat.ID] = cat
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id string, userID string) error {
	stored, ok := f.store.categories[id]
	if !ok || stored.IsSystem || stored.UserID != userID {
		return category.ErrCategoryNotFound
	}
	delete(f.store.categories, id)
	return nil
}

func (f *fakeCategories) CountTransactions(_ context.Context, categoryID string) (int, error) {
	return f.store.transactionCount[categoryID], nil
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

func newTestService(store *fakeStore) ICategoryService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewCategoryService(logger, &fakeRepository{store: store}, &fakeUtils{})
}

func newStore() *fakeStore {
	return &fakeStore{
		categories:       make(map[string]entity.Category),
		transactionCount: make(map[string]int),
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

func TestSystemCategoryIsVisibleToEveryone(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-sys", "", "expense", true)

	svc := newTestService(store)

	for _, userID := range []string{"user-1", "user-2"} {
		cat, err := svc.GetCategoryByID(context.Background(), "cat-sys", userID)
		if err != nil {
			t.Fatalf("user %s: GetCategoryByID err: %v", userID, err)
		}
		if !cat.IsSystem {
			t.Fatalf("user %s: got non-system category", userID)
		}
	}
}

func TestSystemCategoryCannotBeMutated(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-sys", "", "expense", true)

	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.UpdateCategory(ctx, category.UpdateCategoryRequest{
		ID:     "cat-sys",
		UserID: "user-1",
		Name:   "Renamed",
	})
	if !errors.Is(err, category.ErrSystemCategory) {
		t.Fatalf("update err = %v, want %v", err, category.ErrSystemCategory)
	}

	if err := svc.DeleteCategory(ctx, "cat-sys", "user-1"); !errors.Is(err, category.ErrSystemCategory) {
		t.Fatalf("delete err = %v, want %v", err, category.ErrSystemCategory)
	}

	if _, ok := store.categories["cat-sys"]; !ok {
		t.Fatal("system category was removed")
	}
}

func TestForeignCategoryReadsAsMissing(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-own", "user-1", "expense", false)

	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.GetCategoryByID(ctx, "cat-own", "user-2"); !errors.Is(err, category.ErrCategoryNotFound) {
		t.Fatalf("read err = %v, want %v", err, category.ErrCategoryNotFound)
	}

	_, err := svc.UpdateCategory(ctx, category.UpdateCategoryRequest{
		ID:     "cat-own",
		UserID: "user-2",
		Name:   "Stolen",
	})
	if !errors.Is(err, category.ErrCategoryNotFound) {
		t.Fatalf("update err = %v, want %v", err, category.ErrCategoryNotFound)
	}

	if err := svc.DeleteCategory(ctx, "cat-own", "user-2"); !errors.Is(err, category.ErrCategoryNotFound) {
		t.Fatalf("delete err = %v, want %v", err, category.ErrCategoryNotFound)
	}
}

func TestDeleteCategoryInUseIsRejected(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-own", "user-1", "expense", false)
	store.transactionCount["cat-own"] = 3

	svc := newTestService(store)

	if err := svc.DeleteCategory(context.Background(), "cat-own", "user-1"); !errors.Is(err, category.ErrCategoryInUse) {
		t.Fatalf("err = %v, want %v", err, category.ErrCategoryInUse)
	}
	if _, ok := store.categories["cat-own"]; !ok {
		t.Fatal("referenced category was removed")
	}
}

func TestDeleteUnusedOwnedCategory(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-own", "user-1", "expense", false)

	svc := newTestService(store)

	if err := svc.DeleteCategory(context.Background(), "cat-own", "user-1"); err != nil {
		t.Fatalf("DeleteCategory err: %v", err)
	}
	if _, ok := store.categories["cat-own"]; ok {
		t.Fatal("category still present after delete")
	}
}

func TestCreateCategoryRejectsUnknownType(t *testing.T) {
	store := newStore()
	svc := newTestService(store)

	_, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		UserID: "user-1",
		Name:   "Transfers",
		Type:   "transfer",
	})
	if !errors.Is(err, category.ErrInvalidCategoryType) {
		t.Fatalf("err = %v, want %v", err, category.ErrInvalidCategoryType)
	}
}

func TestGetCategoriesFiltersByType(t *testing.T) {
	store := newStore()
	seedCategory(store, "cat-sys-exp", "", "expense", true)
	seedCategory(store, "cat-sys-inc", "", "income", true)
	seedCategory(store, "cat-own", "user-1", "expense", false)
	seedCategory(store, "cat-other", "user-2", "expense", false)

	svc := newTestService(store)

	categories, err := svc.GetCategories(context.Background(), "user-1", "expense")
	if err != nil {
		t.Fatalf("GetCategories err: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	for _, cat := range categories {
		if cat.Type != "expense" {
			t.Fatalf("category %s has type %s", cat.ID, cat.Type)
		}
		if !cat.IsSystem && cat.UserID != "user-1" {
			t.Fatalf("foreign category %s leaked into listing", cat.ID)
		}
	}
}
