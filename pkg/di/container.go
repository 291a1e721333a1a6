package di

import (
	"github.com/goliatone/go-magento-filter-cache/cache"
	"github.com/goliatone/go-magento-filter-cache/magento"
	"github.com/goliatone/go-magento-filter-cache/searchfilter"
	"go.uber.org/zap"
)

// Container provides dependency injection for the filter discovery stack.
// It manages singleton instances of the cache store, key serializer, and
// GraphQL client factory, and exposes the wired cached service.
type Container struct {
	cacheStore    cache.Store
	keySerializer cache.KeySerializer
	clientFactory magento.ClientFactory
	service       *searchfilter.CachedService
	cacheConfig   cache.Config
}

// NewContainer creates a new DI container from the cache and client
// configurations. A nil logger defaults to zap.NewNop().
func NewContainer(cacheCfg cache.Config, clientCfg magento.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := cache.NewStore(cacheCfg)
	if err != nil {
		return nil, err
	}

	clientFactory, err := magento.NewHTTPClientFactory(clientCfg, logger)
	if err != nil {
		return nil, err
	}

	keySerializer := cache.NewDefaultKeySerializer()
	service := searchfilter.NewCachedService(
		searchfilter.NewService(clientFactory, logger),
		store,
		keySerializer,
		logger,
	)

	return &Container{
		cacheStore:    store,
		keySerializer: keySerializer,
		clientFactory: clientFactory,
		service:       service,
		cacheConfig:   cacheCfg,
	}, nil
}

// NewContainerWithDefaults creates a container using default cache
// configuration; only the GraphQL endpoint configuration is required.
func NewContainerWithDefaults(clientCfg magento.Config, logger *zap.Logger) (*Container, error) {
	return NewContainer(cache.DefaultConfig(), clientCfg, logger)
}

// SearchFilterService returns the wired cached discovery service.
func (c *Container) SearchFilterService() *searchfilter.CachedService {
	return c.service
}

// CacheStore returns the singleton cache store instance.
// This allows access to the underlying cache for advanced use cases.
func (c *Container) CacheStore() cache.Store {
	return c.cacheStore
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// ClientFactory returns the GraphQL client factory, for callers that need to
// issue queries outside the discovery flow.
func (c *Container) ClientFactory() magento.ClientFactory {
	return c.clientFactory
}

// CacheConfig returns a copy of the cache configuration used by this container.
func (c *Container) CacheConfig() cache.Config {
	return c.cacheConfig
}
