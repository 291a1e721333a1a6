package searchfilter

import (
	"context"
	"errors"

	"github.com/goliatone/go-magento-filter-cache/cache"
	"go.uber.org/zap"
)

// retrieveMethod is the key prefix for cached discovery results.
const retrieveMethod = "RetrieveCurrentlyAvailableFilters"

// ErrDegraded marks a fetch that fell back to an empty result because of a
// remote failure. The cache store treats it like any fetch error and does not
// store the computation, so a transient backend outage is retried on the next
// call instead of being pinned until the entry expires.
var ErrDegraded = errors.New("searchfilter: discovery degraded to an empty result")

// Fetcher is the uncached discovery operation decorated by CachedService.
type Fetcher interface {
	FetchCurrentFilters(ctx context.Context, storeView string) ([]FilterAttributeMetadata, []RemoteError)
}

// Interface assertion to ensure Service implements Fetcher.
var _ Fetcher = (*Service)(nil)

// CachedService decorates a Fetcher with read-through caching, one entry per
// store view. Concurrent callers racing on a cold entry share a single
// two-query round trip through the store's request coalescing.
type CachedService struct {
	fetcher       Fetcher
	cache         cache.Store
	keySerializer cache.KeySerializer
	logger        *zap.Logger
}

// NewCachedService wires a Fetcher with a cache store and key serializer.
// A nil logger defaults to zap.NewNop().
func NewCachedService(fetcher Fetcher, store cache.Store, keySerializer cache.KeySerializer, logger *zap.Logger) *CachedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedService{
		fetcher:       fetcher,
		cache:         store,
		keySerializer: keySerializer,
		logger:        logger,
	}
}

// RetrieveCurrentlyAvailableFilters returns the filter metadata for a store
// view, serving from cache when possible. It never returns an error: remote
// failures have already been logged by the fetcher and degrade to an empty
// slice, which is not cached.
func (c *CachedService) RetrieveCurrentlyAvailableFilters(ctx context.Context, storeView string) []FilterAttributeMetadata {
	key := c.keySerializer.SerializeKey(retrieveMethod, storeView)

	result, err := cache.GetOrFetch(ctx, c.cache, key, func(ctx context.Context) ([]FilterAttributeMetadata, error) {
		filters, remoteErrs := c.fetcher.FetchCurrentFilters(ctx, storeView)
		if len(remoteErrs) > 0 {
			return filters, ErrDegraded
		}
		return filters, nil
	})
	if err != nil {
		if !errors.Is(err, ErrDegraded) {
			c.logger.Error("filter metadata cache lookup failed",
				zap.String("store_view", storeView), zap.Error(err))
		}
		return []FilterAttributeMetadata{}
	}
	if result == nil {
		return []FilterAttributeMetadata{}
	}

	return result
}

// Invalidate evicts the cached entry for a store view, forcing the next
// retrieval to run the full discovery again.
func (c *CachedService) Invalidate(ctx context.Context, storeView string) error {
	key := c.keySerializer.SerializeKey(retrieveMethod, storeView)
	return c.cache.Delete(ctx, key)
}
