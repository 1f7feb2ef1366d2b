package solrkit

import (
	"context"
	"net/url"
	"testing"

	transport "github.com/kailas-cloud/solrkit/internal/transport/solr"
)

// mockPoster swaps the HTTP transport out of a Client for decode-path tests.
type mockPoster struct {
	postFn func(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error)
	calls  int
}

func (m *mockPoster) Post(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error) {
	m.calls++
	return m.postFn(ctx, rawURL, body, contentType)
}

func newMockClient(t *testing.T, m *mockPoster) *Client {
	t.Helper()
	base, err := url.Parse("http://engine.local/solr/test/")
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	return &Client{base: base, post: m}
}
