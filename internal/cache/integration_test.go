package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stockroom/stockroom/internal/model"
	"github.com/stockroom/stockroom/internal/testutil"
)

func newTestCache(t *testing.T, ctx context.Context) *Cache {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "REDIS_URL")
	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("create cache: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
	})

	if err := testutil.FlushRedis(ctx, c.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	return c
}

func TestCache_UserProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, ctx)

	user := &model.User{
		ID:        "user-profile-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	// Miss before set.
	cached, err := c.GetUserProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user profile: %v", err)
	}
	if cached != nil {
		t.Fatalf("expected cache miss, got %+v", cached)
	}

	if err := c.SetUserProfile(ctx, user); err != nil {
		t.Fatalf("set user profile: %v", err)
	}

	cached, err = c.GetUserProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user profile: %v", err)
	}
	if cached == nil {
		t.Fatalf("expected cache hit")
	}
	if cached.ID != user.ID || cached.Name != user.Name || cached.Email != user.Email {
		t.Errorf("cached profile mismatch: %+v", cached)
	}
	if cached.PasswordHash != "" {
		t.Errorf("cached profile must never carry a password hash")
	}

	if err := c.DeleteUserProfile(ctx, user.ID); err != nil {
		t.Fatalf("delete user profile: %v", err)
	}
	cached, err = c.GetUserProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user profile: %v", err)
	}
	if cached != nil {
		t.Fatalf("expected miss after delete, got %+v", cached)
	}
}

func TestCache_AuthRateLimit(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, ctx)

	const (
		rpm   = 60
		burst = 3
	)
	ip := "203.0.113.7"

	// The burst is consumed one request at a time.
	for i := 0; i < burst; i++ {
		result, err := c.CheckAuthRateLimit(ctx, ip, rpm, burst)
		if err != nil {
			t.Fatalf("check rate limit: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed within the burst", i+1)
		}
	}

	result, err := c.CheckAuthRateLimit(ctx, ip, rpm, burst)
	if err != nil {
		t.Fatalf("check rate limit: %v", err)
	}
	if result.Allowed {
		t.Fatalf("expected the request after the burst to be denied")
	}
	if result.RetryAfter <= 0 {
		t.Errorf("expected a positive retry-after, got %v", result.RetryAfter)
	}

	// A different IP has its own bucket.
	other, err := c.CheckAuthRateLimit(ctx, "198.51.100.9", rpm, burst)
	if err != nil {
		t.Fatalf("check rate limit: %v", err)
	}
	if !other.Allowed {
		t.Fatalf("expected an untouched IP to be allowed")
	}
}
