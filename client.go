package solrkit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kailas-cloud/solrkit/internal/cache"
	"github.com/kailas-cloud/solrkit/internal/codec"
	"github.com/kailas-cloud/solrkit/internal/domain"
	"github.com/kailas-cloud/solrkit/internal/metrics"
	transport "github.com/kailas-cloud/solrkit/internal/transport/solr"
)

const contentTypeJSON = "application/json"

// poster is the transport consumer interface, swapped in tests.
type poster interface {
	Post(ctx context.Context, rawURL string, body []byte, contentType string) (transport.Response, error)
}

// Client talks to one core of a Solr-style search engine. It is stateless
// apart from its transport and safe for concurrent use.
type Client struct {
	base       *url.URL
	post       poster
	cacheStore *cache.Store
	obs        *observer
}

// New creates a client for the core at baseURL, e.g.
// "http://localhost:8983/solr/test/".
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("solrkit: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.New("solrkit: base url must be absolute")
	}

	httpClient := cfg.httpClient
	if httpClient == nil && cfg.timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	var p poster = transport.NewHTTPPoster(httpClient)

	var store *cache.Store
	if len(cfg.cacheAddrs) > 0 {
		store, err = cache.NewStore(cache.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("solrkit: create query cache: %w", err)
		}
		p = cache.New(p, store, cfg.cacheTTL, metrics.QueryCacheTotal)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{base: base, post: p, cacheStore: store, obs: obs}, nil
}

// Close releases the query cache connection, if one was configured.
func (c *Client) Close() {
	if c.cacheStore != nil {
		c.cacheStore.Close()
	}
}

// Add indexes documents without committing them; they stay invisible to
// queries until Commit.
func (c *Client) Add(ctx context.Context, docs ...Document) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("add", start, err) }()

	body, err := codec.EncodeAdd(toDomainDocuments(docs))
	if err != nil {
		return UpdateResult{}, err
	}
	return c.update(ctx, body)
}

// Commit makes all prior writes visible to subsequent queries.
func (c *Client) Commit(ctx context.Context) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("commit", start, err) }()

	return c.update(ctx, codec.EncodeCommit())
}

// AddAndCommit indexes documents and immediately commits, returning the
// commit outcome. An engine error on the add short-circuits.
func (c *Client) AddAndCommit(ctx context.Context, docs ...Document) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("add_and_commit", start, err) }()

	body, err := codec.EncodeAdd(toDomainDocuments(docs))
	if err != nil {
		return UpdateResult{}, err
	}
	if _, err = c.update(ctx, body); err != nil {
		return UpdateResult{}, err
	}
	return c.update(ctx, codec.EncodeCommit())
}

// DeleteByQuery removes every document matching the raw query expression.
// The deletion becomes visible after the next commit.
func (c *Client) DeleteByQuery(ctx context.Context, query string) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete_by_query", start, err) }()

	body, err := codec.EncodeDeleteByQuery(query)
	if err != nil {
		return UpdateResult{}, err
	}
	return c.update(ctx, body)
}

// DeleteByID removes the document with the given unique key.
func (c *Client) DeleteByID(ctx context.Context, id string) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete_by_id", start, err) }()

	body, err := codec.EncodeDeleteByID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	return c.update(ctx, body)
}

// Rollback withdraws all uncommitted writes.
func (c *Client) Rollback(ctx context.Context) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("rollback", start, err) }()

	return c.update(ctx, codec.EncodeRollback())
}

// Optimize asks the engine to merge its index segments.
func (c *Client) Optimize(ctx context.Context) (res UpdateResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("optimize", start, err) }()

	return c.update(ctx, codec.EncodeOptimize())
}

// Query runs a select request and returns one page of matches.
func (c *Client) Query(ctx context.Context, q *Query) (res QueryResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("query", start, err) }()

	u := c.base.JoinPath("select")
	u.RawQuery = q.params().Encode()

	resp, err := c.post.Post(ctx, u.String(), nil, contentTypeJSON)
	if err != nil {
		return QueryResult{}, domain.NewTransportError(err)
	}
	if resp.Status >= http.StatusBadRequest {
		return QueryResult{}, codec.DecodeError(resp.Status, resp.Body)
	}

	decoded, err := codec.DecodeQuery(resp.Body)
	if err != nil {
		return QueryResult{}, err
	}
	return fromQueryResponse(decoded), nil
}

// update posts one update command and decodes the outcome.
func (c *Client) update(ctx context.Context, body []byte) (UpdateResult, error) {
	resp, err := c.post.Post(ctx, c.base.JoinPath("update").String(), body, contentTypeJSON)
	if err != nil {
		return UpdateResult{}, domain.NewTransportError(err)
	}
	if resp.Status >= http.StatusBadRequest {
		return UpdateResult{}, codec.DecodeError(resp.Status, resp.Body)
	}

	decoded, err := codec.DecodeUpdate(resp.Body)
	if err != nil {
		return UpdateResult{}, err
	}
	return fromUpdateResponse(decoded), nil
}
