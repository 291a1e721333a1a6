// Package cache provides caching interfaces and key serialization for the
// filter metadata cache.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - Store: A generic caching interface for read-through operations
//   - KeySerializer: Builds stable cache keys from method names and arguments
//
// The cache package is designed to work with service decorators that need to
// cache expensive remote lookups while maintaining type safety through generics.
//
// # Basic Usage
//
// The simplest way to use the cache package is with the default key serializer:
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey("RetrieveCurrentlyAvailableFilters", "default")
//
// For read-through caching, you would typically use this with a Store implementation:
//
//	store, err := cache.NewStore(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	result, err := cache.GetOrFetch(ctx, store, key, func(ctx context.Context) ([]searchfilter.FilterAttributeMetadata, error) {
//		return fetchFromBackend(ctx)
//	})
//
// # Key Serialization Strategy
//
// Keys are composed of the method name and the scope arguments joined with
// "::". Arguments are expected to be strings or string-like values (store
// view codes, filter type names); string slices are sorted before joining so
// an equivalent scope set always yields the same key.
//
// # Concurrency
//
// The default store is backed by sturdyc, which coalesces concurrent fetches
// for the same key into a single in-flight computation. Callers racing on a
// cold key share one round trip to the backend instead of stampeding it.
//
// # Error Handling
//
// Fetch errors are propagated to the caller and the failed computation is not
// stored, so a transient backend failure never becomes a pinned cache entry.
//
// # See Also
//
// For the cached discovery service built on these contracts, see the
// searchfilter package. For the sturdyc adapter, see internal/cacheinfra.
package cache
