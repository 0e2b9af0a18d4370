package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/model"
	"github.com/stockroom/stockroom/internal/testutil"
)

func TestRepository_CreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := newTestUser()
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byID, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user by ID: %v", err)
	}
	assertUserEqual(t, user, byID)
	if byID.PasswordHash != "" {
		t.Fatalf("expected password hash to be excluded, got %q", byID.PasswordHash)
	}

	byEmail, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	assertUserEqual(t, user, byEmail)
	if byEmail.PasswordHash != "" {
		t.Fatalf("expected password hash to be excluded, got %q", byEmail.PasswordHash)
	}
}

func TestRepository_GetUserWithCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := newTestUser()
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	loaded, err := repo.GetUserWithCredentials(ctx, user.Email)
	if err != nil {
		t.Fatalf("get user with credentials: %v", err)
	}
	if loaded.PasswordHash != user.PasswordHash {
		t.Fatalf("expected password hash %q, got %q", user.PasswordHash, loaded.PasswordHash)
	}
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := newTestUser()
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	duplicate := newTestUser()
	duplicate.Email = user.Email
	if err := repo.CreateUser(ctx, duplicate); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRepository_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	if _, err := repo.GetUserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by ID, got %v", err)
	}
	if _, err := repo.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by email, got %v", err)
	}
	if _, err := repo.GetUserWithCredentials(ctx, "missing@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound with credentials, got %v", err)
	}
}

func newTestRepository(t *testing.T, ctx context.Context) *Repository {
	t.Helper()

	dbURL := testutil.RequireEnv(t, "DATABASE_URL")
	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("create repository: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchemas(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schemas: %v", err)
	}

	return repo
}

func newTestUser() *model.User {
	now := time.Now().UTC()

	return &model.User{
		ID:           fmt.Sprintf("test-%d", now.UnixNano()),
		Name:         "Test User",
		Email:        strings.ToLower(fmt.Sprintf("user-%d@example.com", now.UnixNano())),
		PasswordHash: fmt.Sprintf("hash-%d", now.UnixNano()),
		CreatedAt:    now,
	}
}

func assertUserEqual(t *testing.T, expected, actual *model.User) {
	t.Helper()

	if actual.ID != expected.ID {
		t.Fatalf("expected id %q, got %q", expected.ID, actual.ID)
	}
	if actual.Name != expected.Name {
		t.Fatalf("expected name %q, got %q", expected.Name, actual.Name)
	}
	if actual.Email != expected.Email {
		t.Fatalf("expected email %q, got %q", expected.Email, actual.Email)
	}
	if actual.CreatedAt.IsZero() {
		t.Fatalf("expected created at to be set")
	}
}
