// Package cache adds an optional read-through cache for query responses.
// Update requests are never cached; only parameter-only select requests
// (empty POST bodies) qualify.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/solrkit/internal/logger"
	transport "github.com/kailas-cloud/solrkit/internal/transport/solr"
)

const keyPrefix = "solrkit:query_cache:"

// ErrKeyNotFound is returned by KV.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the consumer interface for the cache backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachingPoster decorates a Poster with a query response cache. Cache
// failures are logged and ignored: a broken cache degrades to the inner
// poster, never to a request failure.
type CachingPoster struct {
	inner      transport.Poster
	kv         KV
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
}

// New creates the caching decorator. cacheTotal is a counter vec with
// label "result" ("hit"/"miss"); nil disables counting.
func New(inner transport.Poster, kv KV, ttl time.Duration, cacheTotal *prometheus.CounterVec) *CachingPoster {
	return &CachingPoster{inner: inner, kv: kv, ttl: ttl, cacheTotal: cacheTotal}
}

// Post serves cacheable requests from the KV store when possible and
// stores fresh successful responses. Requests with a body pass through.
func (c *CachingPoster) Post(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
	if len(body) > 0 {
		return c.inner.Post(ctx, rawURL, body, contentType)
	}

	key := cacheKey(rawURL)
	if data, ok := c.get(ctx, key); ok {
		c.inc("hit")
		return transport.Response{Status: http.StatusOK, Body: data}, nil
	}
	c.inc("miss")

	resp, err := c.inner.Post(ctx, rawURL, body, contentType)
	if err != nil {
		return resp, err
	}
	if resp.Status == http.StatusOK {
		c.put(ctx, key, resp.Body)
	}
	return resp, nil
}

func (c *CachingPoster) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachingPoster) get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.FromContext(ctx).Warn("failed to read query cache",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (c *CachingPoster) put(ctx context.Context, key string, data []byte) {
	if err := c.kv.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		logger.FromContext(ctx).Warn("failed to write query cache",
			zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(rawURL string) string {
	h := sha256.Sum256([]byte(rawURL))
	return keyPrefix + hex.EncodeToString(h[:])
}
