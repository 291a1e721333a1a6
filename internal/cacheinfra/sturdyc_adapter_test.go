package cacheinfra

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Capacity:           100,
		NumShards:          2,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 256 {
		t.Errorf("expected Capacity to be 256, got %d", cfg.Capacity)
	}

	if cfg.NumShards != 64 {
		t.Errorf("expected NumShards to be 64, got %d", cfg.NumShards)
	}

	if cfg.TTL != 10*time.Minute {
		t.Errorf("expected TTL to be 10 minutes, got %v", cfg.TTL)
	}

	if cfg.EvictionPercentage != 10 {
		t.Errorf("expected EvictionPercentage to be 10, got %d", cfg.EvictionPercentage)
	}

	if cfg.MissingRecordStorage {
		t.Error("expected MissingRecordStorage to be false")
	}

	if cfg.EarlyRefresh == nil {
		t.Fatal("expected EarlyRefresh to be configured")
	}

	if cfg.EarlyRefresh.SyncRefreshTime != 5*time.Minute {
		t.Errorf("expected EarlyRefresh.SyncRefreshTime to be 5 minutes, got %v", cfg.EarlyRefresh.SyncRefreshTime)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid config",
			cfg:       testConfig(),
			wantError: false,
		},
		{
			name: "invalid capacity - zero",
			cfg: Config{
				Capacity:           0,
				NumShards:          2,
				TTL:                time.Minute,
				EvictionPercentage: 10,
			},
			wantError: true,
			errorMsg:  "must be greater than 0",
		},
		{
			name: "invalid num shards - zero",
			cfg: Config{
				Capacity:           100,
				NumShards:          0,
				TTL:                time.Minute,
				EvictionPercentage: 10,
			},
			wantError: true,
			errorMsg:  "must be greater than 0",
		},
		{
			name: "invalid TTL - zero",
			cfg: Config{
				Capacity:           100,
				NumShards:          2,
				TTL:                0,
				EvictionPercentage: 10,
			},
			wantError: true,
			errorMsg:  "must be greater than 0",
		},
		{
			name: "invalid eviction percentage - over 100",
			cfg: Config{
				Capacity:           100,
				NumShards:          2,
				TTL:                time.Minute,
				EvictionPercentage: 101,
			},
			wantError: true,
			errorMsg:  "must be between 1 and 100",
		},
		{
			name: "invalid early refresh - negative retry delay",
			cfg: Config{
				Capacity:           100,
				NumShards:          2,
				TTL:                time.Minute,
				EvictionPercentage: 10,
				EarlyRefresh: &EarlyRefreshConfig{
					RetryBaseDelay: -time.Second,
				},
			},
			wantError: true,
			errorMsg:  "must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error to contain %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestNewSturdycStore_InvalidConfig(t *testing.T) {
	_, err := NewSturdycStore(Config{})
	if err == nil {
		t.Fatal("expected error for zero config")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestSturdycStore_GetOrFetch_CachesResult(t *testing.T) {
	store, err := NewSturdycStore(testConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var fetchCount int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&fetchCount, 1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		result, err := store.GetOrFetch(context.Background(), "key", fetch)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if result != "value" {
			t.Fatalf("call %d: expected \"value\", got %v", i, result)
		}
	}

	if got := atomic.LoadInt32(&fetchCount); got != 1 {
		t.Errorf("expected a single fetch, got %d", got)
	}
}

func TestSturdycStore_GetOrFetch_ErrorNotCached(t *testing.T) {
	store, err := NewSturdycStore(testConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var fetchCount int32
	fetchErr := errors.New("remote failure")
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&fetchCount, 1)
		return nil, fetchErr
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrFetch(context.Background(), "key", fetch); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	if got := atomic.LoadInt32(&fetchCount); got != 2 {
		t.Errorf("expected failed fetches to be retried, got %d fetches", got)
	}
}

func TestSturdycStore_GetOrFetch_NilFetchFn(t *testing.T) {
	store, err := NewSturdycStore(testConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, err := store.GetOrFetch(context.Background(), "key", nil); err == nil {
		t.Error("expected error for nil fetchFn")
	}
}

func TestSturdycStore_Delete_ForcesRefetch(t *testing.T) {
	store, err := NewSturdycStore(testConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var fetchCount int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&fetchCount, 1)
		return "value", nil
	}

	if _, err := store.GetOrFetch(context.Background(), "key", fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(context.Background(), "key"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if _, err := store.GetOrFetch(context.Background(), "key", fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&fetchCount); got != 2 {
		t.Errorf("expected refetch after delete, got %d fetches", got)
	}
}

func TestSturdycStore_GetOrFetch_CoalescesConcurrentFetches(t *testing.T) {
	store, err := NewSturdycStore(testConfig())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var fetchCount int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&fetchCount, 1)
		time.Sleep(50 * time.Millisecond)
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := store.GetOrFetch(context.Background(), "key", fetch)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if result != "value" {
				t.Errorf("expected \"value\", got %v", result)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&fetchCount); got != 1 {
		t.Errorf("expected concurrent callers to share one fetch, got %d", got)
	}
}
