package metalimits

import (
	"context"
	"encoding/json"
	"time"

	"github.com/smartzap/server/internal/logger"
)

// storage key for the serialized limits snapshot
const CacheKey = "smartzap_account_limits"

// snapshots older than this are refetched from the provider
const limitsMaxAge = time.Hour

// key-value store abstraction backing the limits cache.
// implementations must report absence as ("", nil), not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// best-effort cache for AccountLimits snapshots. never a source of
// truth: every failure degrades to a cache miss.
type Cache struct {
	store KVStore
	now   func() time.Time
}

func NewCache(store KVStore) *Cache {
	return &Cache{store: store, now: time.Now}
}

// returns the cached snapshot, or nil on absence, storage failure,
// or corrupt content
func (c *Cache) CachedLimits(ctx context.Context) *AccountLimits {
	if c.store == nil {
		return nil
	}

	raw, err := c.store.Get(ctx, CacheKey)
	if err != nil || raw == "" {
		return nil
	}

	var limits AccountLimits
	if err := json.Unmarshal([]byte(raw), &limits); err != nil {
		// corrupt blob is a miss, not an error
		return nil
	}

	return &limits
}

// persists the snapshot, swallowing storage errors
func (c *Cache) CacheLimits(ctx context.Context, limits *AccountLimits) {
	if c.store == nil || limits == nil {
		return
	}

	raw, err := json.Marshal(limits)
	if err != nil {
		return
	}

	if err := c.store.Set(ctx, CacheKey, string(raw)); err != nil {
		logger.Debug("limits cache write failed", "error", err)
	}
}

// reports whether the snapshot must be refetched. a snapshot aged
// exactly one hour is still fresh; strictly older is stale.
func (c *Cache) Stale(limits *AccountLimits) bool {
	if limits == nil {
		return true
	}

	return c.now().Sub(limits.LastFetched) > limitsMaxAge
}
