package cache

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	transport "github.com/kailas-cloud/solrkit/internal/transport/solr"
)

type mockPoster struct {
	postFn func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error)
	calls  int
}

func (m *mockPoster) Post(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
	m.calls++
	return m.postFn(ctx, rawURL, body, contentType)
}

type mockKV struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	return m.getFn(ctx, key)
}

func (m *mockKV) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.setFn(ctx, key, value, ttl)
}

const selectURL = "http://localhost:8983/solr/test/select?q=%2A%3A%2A&wt=json"

func TestCachingPosterMissThenStore(t *testing.T) {
	var storedKey string
	var storedVal []byte
	var storedTTL time.Duration

	kv := &mockKV{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, ErrKeyNotFound
		},
		setFn: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			storedKey, storedVal, storedTTL = key, value, ttl
			return nil
		},
	}
	inner := &mockPoster{
		postFn: func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
			return transport.Response{Status: http.StatusOK, Body: []byte("fresh")}, nil
		},
	}

	c := New(inner, kv, 90*time.Second, nil)
	resp, err := c.Post(context.Background(), selectURL, nil, "application/json")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if string(resp.Body) != "fresh" {
		t.Errorf("body = %q, want fresh", resp.Body)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	if storedKey == "" || string(storedVal) != "fresh" {
		t.Errorf("stored key/value = %q/%q", storedKey, storedVal)
	}
	if storedTTL != 90*time.Second {
		t.Errorf("stored ttl = %v, want 90s", storedTTL)
	}
}

func TestCachingPosterHit(t *testing.T) {
	kv := &mockKV{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return []byte("cached"), nil
		},
	}
	inner := &mockPoster{
		postFn: func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
			t.Fatal("inner poster must not be called on a cache hit")
			return transport.Response{}, nil
		},
	}

	c := New(inner, kv, time.Minute, nil)
	resp, err := c.Post(context.Background(), selectURL, nil, "application/json")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.Status != http.StatusOK || string(resp.Body) != "cached" {
		t.Errorf("resp = %d/%q, want 200/cached", resp.Status, resp.Body)
	}
	if inner.calls != 0 {
		t.Errorf("inner calls = %d, want 0", inner.calls)
	}
}

func TestCachingPosterBodyBypassesCache(t *testing.T) {
	kv := &mockKV{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			t.Fatal("cache must not be consulted for requests with a body")
			return nil, nil
		},
	}
	inner := &mockPoster{
		postFn: func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
			return transport.Response{Status: http.StatusOK, Body: []byte("ok")}, nil
		},
	}

	c := New(inner, kv, time.Minute, nil)
	if _, err := c.Post(context.Background(), "http://localhost:8983/solr/test/update", []byte(`{"commit":{}}`), "application/json"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachingPosterSkipsNonOKResponses(t *testing.T) {
	setCalls := 0
	kv := &mockKV{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, ErrKeyNotFound
		},
		setFn: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			setCalls++
			return nil
		},
	}
	inner := &mockPoster{
		postFn: func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
			return transport.Response{Status: http.StatusBadRequest, Body: []byte("error")}, nil
		},
	}

	c := New(inner, kv, time.Minute, nil)
	resp, err := c.Post(context.Background(), selectURL, nil, "application/json")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Status)
	}
	if setCalls != 0 {
		t.Errorf("set calls = %d, want 0 (error responses are not cached)", setCalls)
	}
}

func TestCachingPosterToleratesCacheFailures(t *testing.T) {
	kv := &mockKV{
		getFn: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("connection reset")
		},
		setFn: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			return errors.New("connection reset")
		},
	}
	inner := &mockPoster{
		postFn: func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
			return transport.Response{Status: http.StatusOK, Body: []byte("fresh")}, nil
		},
	}

	c := New(inner, kv, time.Minute, nil)
	resp, err := c.Post(context.Background(), selectURL, nil, "application/json")
	if err != nil {
		t.Fatalf("a broken cache must not fail the request: %v", err)
	}
	if string(resp.Body) != "fresh" {
		t.Errorf("body = %q, want fresh", resp.Body)
	}
}

func TestCacheKeyIsStablePerURL(t *testing.T) {
	a := cacheKey(selectURL)
	b := cacheKey(selectURL)
	other := cacheKey(selectURL + "&rows=10")
	if a != b {
		t.Error("same URL produced different keys")
	}
	if a == other {
		t.Error("different URLs produced the same key")
	}
}
