package solrkit

import (
	"net/url"
	"strconv"
	"strings"
)

// Order is a sort direction.
type Order string

// Sort directions.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Query describes one select request: a raw query expression plus the
// standard paging and projection parameters. The expression is passed to
// the engine verbatim; this client builds no query DSL.
type Query struct {
	q      string
	rows   int
	start  int
	fields []string
	sorts  []string
}

// NewQuery creates a query with the given raw expression, e.g. "*:*" or
// "city:London".
func NewQuery(q string) *Query {
	return &Query{q: q}
}

// Rows sets the page size.
func (q *Query) Rows(n int) *Query {
	q.rows = n
	return q
}

// Start sets the zero-based offset of the requested page.
func (q *Query) Start(n int) *Query {
	q.start = n
	return q
}

// Fields restricts the returned fields (the fl parameter).
func (q *Query) Fields(names ...string) *Query {
	q.fields = append(q.fields, names...)
	return q
}

// Sort appends a sort clause.
func (q *Query) Sort(field string, order Order) *Query {
	q.sorts = append(q.sorts, field+" "+string(order))
	return q
}

// params renders the request parameters for the select handler.
func (q *Query) params() url.Values {
	v := url.Values{}
	v.Set("q", q.q)
	v.Set("wt", "json")
	if q.rows > 0 {
		v.Set("rows", strconv.Itoa(q.rows))
	}
	if q.start > 0 {
		v.Set("start", strconv.Itoa(q.start))
	}
	if len(q.fields) > 0 {
		v.Set("fl", strings.Join(q.fields, ","))
	}
	if len(q.sorts) > 0 {
		v.Set("sort", strings.Join(q.sorts, ","))
	}
	return v
}
