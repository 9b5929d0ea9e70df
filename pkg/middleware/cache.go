package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"account-insights/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cacheStore is the slice of the redis API the middleware needs; tests
// swap in an in-memory implementation.
type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

func (s redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// captureWriter buffers the response body while forwarding to the client
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

func cacheKey(r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.Path))
	return fmt.Sprintf("reports:%x", sum)
}

// ReportCache serves cached report bodies from Redis. The report routes are
// parameterless GETs, so method+path is a complete cache key. Only 200
// responses are stored; failures always hit the store again.
func ReportCache(config utils.CacheConfig, rdb *redis.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	if !config.Enabled || rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return reportCache(config, redisStore{client: rdb}, logger)
}

func reportCache(config utils.CacheConfig, store cacheStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			if body, err := store.Get(r.Context(), key); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			cw.Header().Set("X-Cache", "MISS")

			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK {
				return
			}

			if err := store.Set(r.Context(), key, cw.buf.Bytes(), config.TTL); err != nil {
				logger.Warn("Failed to store report in cache",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
			}
		})
	}
}
