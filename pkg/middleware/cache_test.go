package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"account-insights/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory cacheStore for exercising the middleware
type memStore struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, ok := s.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return body, nil
}

func (s *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func cacheConfig() utils.CacheConfig {
	return utils.CacheConfig{Enabled: true, TTL: 30 * time.Second}
}

func TestReportCacheMissThenHit(t *testing.T) {
	store := newMemStore()

	calls := 0
	handler := reportCache(cacheConfig(), store, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":true}`))
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/referrals", nil)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	// cached body served without touching the handler again
	assert.Equal(t, 1, calls)
}

func TestReportCacheStoresWithConfiguredTTL(t *testing.T) {
	store := newMemStore()

	handler := reportCache(cacheConfig(), store, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/latest-login", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, store.ttls, 1)
	for _, ttl := range store.ttls {
		assert.Equal(t, 30*time.Second, ttl)
	}
}

func TestReportCacheSkipsFailures(t *testing.T) {
	store := newMemStore()

	calls := 0
	handler := reportCache(cacheConfig(), store, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status":false}`))
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/users-with-roles", nil)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotEqual(t, "HIT", rec.Header().Get("X-Cache"))
	}

	// failures are never stored, every request reaches the handler
	assert.Empty(t, store.data)
	assert.Equal(t, 2, calls)
}

func TestReportCacheDisabled(t *testing.T) {
	config := utils.CacheConfig{Enabled: false}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := ReportCache(config, nil, zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/referrals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
