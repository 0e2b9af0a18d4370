package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stockroom/stockroom/internal/model"
)

const (
	// profileCachePrefix is the Redis key prefix for user profile cache.
	profileCachePrefix = "profile:user:"
	// profileCacheTTL is the time-to-live for cached profiles.
	// Profiles are immutable in scope, so the TTL only bounds staleness
	// after out-of-band changes.
	profileCacheTTL = 5 * time.Minute
)

// CachedProfile represents a user profile stored in Redis.
// The password hash is never cached.
type CachedProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUserProfile retrieves a cached user profile by user id.
// Returns nil on cache miss.
func (c *Cache) GetUserProfile(ctx context.Context, userID string) (*model.User, error) {
	key := profileCachePrefix + userID

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache miss is not an error
		return nil, nil //nolint:nilerr
	}

	var cached CachedProfile
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.User{
		ID:        cached.ID,
		Name:      cached.Name,
		Email:     cached.Email,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// SetUserProfile caches a user profile.
func (c *Cache) SetUserProfile(ctx context.Context, user *model.User) error {
	key := profileCachePrefix + user.ID

	cached := CachedProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}

	return c.client.Set(ctx, key, data, profileCacheTTL).Err()
}

// DeleteUserProfile removes a cached user profile.
func (c *Cache) DeleteUserProfile(ctx context.Context, userID string) error {
	key := profileCachePrefix + userID
	return c.client.Del(ctx, key).Err()
}
