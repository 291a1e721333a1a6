package magento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client executes GraphQL queries against a Magento backend. Execute is for
// data queries scoped to a store view; ExecuteIntrospection is for schema
// queries, which are store independent.
type Client interface {
	Execute(ctx context.Context, query string) (*Response, error)
	ExecuteIntrospection(ctx context.Context, query string) (*Response, error)
}

// ClientFactory creates clients bound to a store view. The introspection flag
// selects introspection mode, matching how the backend integration constructs
// a separate client for schema queries.
type ClientFactory interface {
	Create(storeView string, introspection bool) (Client, error)
}

// BreakerConfig holds circuit breaker settings for the GraphQL endpoint.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns breaker settings tuned for a backend that the
// cache shields from most traffic: trip fast, recover slowly.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      2,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

// Config configures the HTTP client factory.
type Config struct {
	// Endpoint is the Magento GraphQL endpoint URL. Required.
	Endpoint string

	// HTTPClient is the underlying transport. Defaults to http.DefaultClient;
	// no client-side timeout is imposed beyond the request context.
	HTTPClient *http.Client

	// Breaker configures the circuit breaker shared by all clients created
	// from this factory.
	Breaker BreakerConfig
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return &ConfigError{Field: "Endpoint", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// HTTPClientFactory creates HTTP-backed clients that share one circuit
// breaker per endpoint, so a dead backend trips once for every store view.
type HTTPClientFactory struct {
	config  Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewHTTPClientFactory validates the configuration and builds a factory.
// A nil logger defaults to zap.NewNop().
func NewHTTPClientFactory(cfg Config, logger *zap.Logger) (*HTTPClientFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	breakerCfg := cfg.Breaker
	if breakerCfg.MinRequests == 0 {
		breakerCfg = DefaultBreakerConfig()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "magento-graphql",
		MaxRequests: breakerCfg.MaxRequests,
		Interval:    breakerCfg.Interval,
		Timeout:     breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerCfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= breakerCfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &HTTPClientFactory{
		config:  cfg,
		http:    httpClient,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Create returns a client bound to the given store view.
func (f *HTTPClientFactory) Create(storeView string, introspection bool) (Client, error) {
	return &httpClient{
		endpoint:      f.config.Endpoint,
		storeView:     storeView,
		introspection: introspection,
		http:          f.http,
		breaker:       f.breaker,
		logger:        f.logger,
	}, nil
}

type httpClient struct {
	endpoint      string
	storeView     string
	introspection bool
	http          *http.Client
	breaker       *gobreaker.CircuitBreaker
	logger        *zap.Logger
}

type graphqlRequest struct {
	Query string `json:"query"`
}

// Execute runs a data query scoped to the client's store view.
func (c *httpClient) Execute(ctx context.Context, query string) (*Response, error) {
	return c.post(ctx, query, c.storeView)
}

// ExecuteIntrospection runs a schema query. The Store header is omitted since
// the schema does not vary per store view.
func (c *httpClient) ExecuteIntrospection(ctx context.Context, query string) (*Response, error) {
	return c.post(ctx, query, "")
}

func (c *httpClient) post(ctx context.Context, query, storeView string) (*Response, error) {
	body, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("magento: encode request: %w", err)
	}

	requestID := uuid.NewString()
	c.logger.Debug("executing graphql query",
		zap.String("request_id", requestID),
		zap.String("store_view", storeView),
		zap.Bool("introspection", c.introspection))

	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("magento: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if storeView != "" {
			req.Header.Set("Store", storeView)
		}

		httpResp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("magento: execute request: %w", err)
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, fmt.Errorf("magento: read response: %w", err)
		}

		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("magento: unexpected status %d", httpResp.StatusCode)
		}

		return parseResponse(respBody)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Response), nil
}
