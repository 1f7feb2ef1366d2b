// Package solr implements the HTTP boundary towards the search engine:
// one POST in, a status code and raw body out. Everything above this
// package works on bytes; everything below it is net/http.
package solr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/solrkit/internal/logger"
	"github.com/kailas-cloud/solrkit/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Response is the raw outcome of one HTTP exchange.
type Response struct {
	Status int
	Body   []byte
}

// Poster issues a single HTTP POST. Implementations own connection
// management, timeouts and cancellation; callers own decoding.
type Poster interface {
	Post(ctx context.Context, rawURL string, body []byte, contentType string) (Response, error)
}

// HTTPPoster is the default net/http-backed Poster.
type HTTPPoster struct {
	client *http.Client
}

// NewHTTPPoster wraps an HTTP client; nil gets a client with the default
// timeout.
func NewHTTPPoster(client *http.Client) *HTTPPoster {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPPoster{client: client}
}

// Post sends body to rawURL and returns the status code and full response
// body. A returned error means the exchange itself failed; HTTP error
// statuses are returned in Response for the caller to decode.
func (p *HTTPPoster) Post(ctx context.Context, rawURL string, body []byte, contentType string) (Response, error) {
	log := logger.FromContext(ctx)
	handler := handlerLabel(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := p.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(handler, "error").Inc()
		log.Debug("engine request failed",
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return Response{}, fmt.Errorf("post %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(handler, "error").Inc()
		return Response{}, fmt.Errorf("read response from %s: %w", rawURL, err)
	}

	metrics.RequestsTotal.WithLabelValues(handler, "ok").Inc()
	metrics.RequestDuration.WithLabelValues(handler).Observe(duration.Seconds())
	log.Debug("engine request",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.Int("response_bytes", len(data)),
	)

	return Response{Status: resp.StatusCode, Body: data}, nil
}

// handlerLabel extracts the engine handler name (update, select) from the
// request URL for metric labels.
func handlerLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	base := path.Base(u.Path)
	switch base {
	case "update", "select":
		return base
	default:
		return "other"
	}
}
