package cache

import "context"

// KeySerializer builds a cache key from a method name + arbitrary args.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(method string, args ...any) string
}

// FetchFn is the function signature Store expects when fetching from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Store exposes the read-through caching operations we need when decorating
// the filter discovery service. It is exported so that other packages can
// reuse the default serializer or provide alternate cache backends.
type Store interface {
	GetOrFetch(ctx context.Context, key string, fetchFn func(ctx context.Context) (any, error)) (any, error)
	Delete(ctx context.Context, key string) error
}

// GetOrFetch is a type-safe wrapper function that provides generic support for Store.
func GetOrFetch[T any](ctx context.Context, store Store, key string, fetchFn FetchFn[T]) (T, error) {
	result, err := store.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetchFn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if result == nil {
		var zero T
		return zero, nil
	}
	return result.(T), nil
}
