package metalimits

import "context"

// combines the fetcher and cache into the snapshot lifecycle: serve
// from cache while fresh, refetch and re-cache once stale
type Service struct {
	fetcher       *Fetcher
	cache         *Cache
	phoneNumberID string
	accessToken   string
}

func NewService(fetcher *Fetcher, cache *Cache, phoneNumberID, accessToken string) *Service {
	return &Service{
		fetcher:       fetcher,
		cache:         cache,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
	}
}

// returns the current snapshot, refreshing it when the cached copy is
// absent or stale
func (s *Service) CurrentLimits(ctx context.Context) *AccountLimits {
	cached := s.cache.CachedLimits(ctx)
	if !s.cache.Stale(cached) {
		return cached
	}

	return s.Refresh(ctx)
}

// fetches a fresh snapshot from the provider and caches it
func (s *Service) Refresh(ctx context.Context) *AccountLimits {
	limits := s.fetcher.FetchAccountLimits(ctx, s.phoneNumberID, s.accessToken)
	s.cache.CacheLimits(ctx, limits)

	return limits
}

// validates a campaign against the current snapshot
func (s *Service) ValidateCampaign(ctx context.Context, contactCount int) *ValidationResult {
	return ValidateCampaign(contactCount, s.CurrentLimits(ctx))
}
