package metalimits

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("storage unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("storage unavailable")
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(NewMemoryStore())

	limits := &AccountLimits{
		MessagingTier:   Tier10K,
		ThroughputLevel: ThroughputHigh,
		QualityScore:    QualityYellow,
		UsedToday:       1234,
		LastFetched:     time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
	}

	cache.CacheLimits(ctx, limits)

	got := cache.CachedLimits(ctx)
	if got == nil {
		t.Fatal("expected cached limits, got nil")
	}

	if got.MessagingTier != limits.MessagingTier ||
		got.ThroughputLevel != limits.ThroughputLevel ||
		got.QualityScore != limits.QualityScore ||
		got.UsedToday != limits.UsedToday {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, limits)
	}

	if !got.LastFetched.Equal(limits.LastFetched) {
		t.Errorf("LastFetched = %v, want %v", got.LastFetched, limits.LastFetched)
	}
}

func TestCache_MissOnAbsent(t *testing.T) {
	cache := NewCache(NewMemoryStore())

	if got := cache.CachedLimits(context.Background()); got != nil {
		t.Errorf("expected nil on empty store, got %+v", got)
	}
}

func TestCache_MissOnCorruptJSON(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, CacheKey, "{not json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache := NewCache(store)
	if got := cache.CachedLimits(ctx); got != nil {
		t.Errorf("expected nil on corrupt blob, got %+v", got)
	}
}

func TestCache_StorageErrorsSwallowed(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(failingStore{})

	// writes must never propagate storage failures
	cache.CacheLimits(ctx, DefaultLimits(time.Now()))

	// reads degrade to a miss
	if got := cache.CachedLimits(ctx); got != nil {
		t.Errorf("expected nil on failing store, got %+v", got)
	}
}

func TestCache_NoStoreInjected(t *testing.T) {
	cache := NewCache(nil)

	cache.CacheLimits(context.Background(), DefaultLimits(time.Now()))

	if got := cache.CachedLimits(context.Background()); got != nil {
		t.Errorf("expected nil without a store, got %+v", got)
	}
}

func TestCache_Staleness(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	cache := NewCache(NewMemoryStore())
	cache.now = func() time.Time { return now }

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"fresh", 5 * time.Minute, false},
		{"exactly one hour", time.Hour, false},
		{"one hour and one second", time.Hour + time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := DefaultLimits(now.Add(-tt.age))

			if got := cache.Stale(limits); got != tt.want {
				t.Errorf("Stale(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestCache_NilIsStale(t *testing.T) {
	cache := NewCache(NewMemoryStore())

	if !cache.Stale(nil) {
		t.Error("nil snapshot must be stale")
	}
}
