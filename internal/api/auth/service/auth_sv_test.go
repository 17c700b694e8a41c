package authService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"FiscalGolang/internal/api/auth"
	authRepository "FiscalGolang/internal/api/auth/repository"
	"FiscalGolang/internal/entity"
	redisPkg "FiscalGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	users    map[string]entity.User
	sessions map[string]string
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    &fakeUsers{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUsers struct {
	store *fakeStore
}

func (f *fakeUsers) Create(_ context.Context, u entity.User) error {
	for _, stored := range f.store.users {
		if stored.Email == u.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	f.store.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.store.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, u := range f.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) Update(_ context.Context, u entity.User) error {
	if _, ok := f.store.users[u.ID]; !ok {
		return auth.ErrUserNotFound
	}
	f.store.users[u.ID] = u
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	if _, ok := f.store.users[id]; !ok {
		return auth.ErrUserNotFound
	}
	delete(f.store.users, id)
	return nil
}

type fakeBcrypt struct{}

func (fakeBcrypt) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeBcrypt) ComparePassword(hashPassword string, password string) error {
	if hashPassword != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeSessions struct {
	store *fakeStore
}

func (f *fakeSessions) SetSession(_ context.Context, sessionID string, userID string, _ time.Duration) error {
	f.store.sessions[sessionID] = userID
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context, sessionID string) (string, error) {
	userID, ok := f.store.sessions[sessionID]
	if !ok {
		return "", redisPkg.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, sessionID string) error {
	delete(f.store.sessions, sessionID)
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

func newTestService(store *fakeStore) IAuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAuthService(
		logger,
		&fakeRepository{store: store},
		fakeBcrypt{},
		&fakeSessions{store: store},
		&fakeUtils{},
	)
}

func newStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]entity.User),
		sessions: make(map[string]string),
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Register(ctx, auth.RegisterUserRequest{
		Email:    "budi@example.com",
		Name:     "Budi",
		Password: "rahasia-sekali",
	})
	if err != nil {
		t.Fatalf("first Register err: %v", err)
	}
	if first.Password == "rahasia-sekali" {
		t.Fatal("password stored without hashing")
	}

	_, err = svc.Register(ctx, auth.RegisterUserRequest{
		Email:    "budi@example.com",
		Name:     "Other Budi",
		Password: "rahasia-lain",
	})
	if !errors.Is(err, auth.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want %v", err, auth.ErrEmailAlreadyExists)
	}
	if len(store.users) != 1 {
		t.Fatalf("user rows = %d, want 1", len(store.users))
	}
}

func TestLoginCreatesSessionAndToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	store := newStore()
	svc := newTestService(store)
	ctx := context.Background()

	registered, err := svc.Register(ctx, auth.RegisterUserRequest{
		Email:    "budi@example.com",
		Name:     "Budi",
		Password: "rahasia-sekali",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}

	resp, err := svc.Login(ctx, auth.LoginUserRequest{
		Email:    "budi@example.com",
		Password: "rahasia-sekali",
	})
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}

	if resp.AccessToken == "" {
		t.Fatal("Login returned empty access token")
	}
	if len(store.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(store.sessions))
	}
	for _, userID := range store.sessions {
		if userID != registered.ID {
			t.Fatalf("session user = %s, want %s", userID, registered.ID)
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, auth.RegisterUserRequest{
		Email:    "budi@example.com",
		Name:     "Budi",
		Password: "rahasia-sekali",
	}); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, auth.LoginUserRequest{
		Email:    "budi@example.com",
		Password: "salah",
	})
	_, unknownEmail := svc.Login(ctx, auth.LoginUserRequest{
		Email:    "siapa@example.com",
		Password: "rahasia-sekali",
	})

	if !errors.Is(wrongPassword, auth.ErrInvalidEmailOrPassword) {
		t.Fatalf("wrong password err = %v, want %v", wrongPassword, auth.ErrInvalidEmailOrPassword)
	}
	if !errors.Is(unknownEmail, auth.ErrInvalidEmailOrPassword) {
		t.Fatalf("unknown email err = %v, want %v", unknownEmail, auth.ErrInvalidEmailOrPassword)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("failed logins left %d session(s)", len(store.sessions))
	}
}

func TestLogoutDropsSession(t *testing.T) {
	store := newStore()
	store.sessions["sid-1"] = "user-1"

	svc := newTestService(store)

	if err := svc.Logout(context.Background(), "sid-1"); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if _, ok := store.sessions["sid-1"]; ok {
		t.Fatal("session survived logout")
	}
}

func TestDeleteUserDropsRowAndSession(t *testing.T) {
	store := newStore()
	store.users["user-1"] = entity.User{ID: "user-1", Email: "budi@example.com", Name: "Budi"}
	store.sessions["sid-1"] = "user-1"

	svc := newTestService(store)

	if err := svc.DeleteUser(context.Background(), "user-1", "sid-1"); err != nil {
		t.Fatalf("DeleteUser err: %v", err)
	}
	if _, ok := store.users["user-1"]; ok {
		t.Fatal("user row survived deletion")
	}
	if _, ok := store.sessions["sid-1"]; ok {
		t.Fatal("session survived user deletion")
	}
}

func TestUpdateProfileChangesNameOnly(t *testing.T) {
	store := newStore()
	store.users["user-1"] = entity.User{
		ID:       "user-1",
		Email:    "budi@example.com",
		Name:     "Budi",
		Password: "hashed:rahasia-sekali",
	}

	svc := newTestService(store)

	updated, err := svc.UpdateProfile(context.Background(), auth.UpdateUserRequest{
		ID:   "user-1",
		Name: "Budi Santoso",
	})
	if err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}

	if updated.Name != "Budi Santoso" {
		t.Fatalf("name = %s, want Budi Santoso", updated.Name)
	}
	stored := store.users["user-1"]
	if stored.Email != "budi@example.com" || stored.Password != "hashed:rahasia-sekali" {
		t.Fatal("profile update touched email or password")
	}
}
