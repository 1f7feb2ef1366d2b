// Package solrtest provides an in-memory stand-in for one search engine
// core, used by the package tests. The update handler understands add
// arrays and the delete/commit/rollback/optimize commands; the select
// handler answers raw queries of the form "*:*" or "field:value" honoring
// rows and start. Added documents stay invisible until a commit, so
// commit semantics are testable.
package solrtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Core is one fake engine core with its document store.
type Core struct {
	mu        sync.Mutex
	committed []json.RawMessage
	pending   []json.RawMessage
	failCode  int
	failMsg   string
}

// NewServer starts an HTTP test server exposing the core under
// /solr/{core}/update and /solr/{core}/select. The caller owns srv.Close.
func NewServer() (*Core, *httptest.Server) {
	c := &Core{}
	r := chi.NewRouter()
	r.Post("/solr/{core}/update", c.handleUpdate)
	r.Post("/solr/{core}/select", c.handleSelect)
	r.Get("/solr/{core}/select", c.handleSelect)
	return c, httptest.NewServer(r)
}

// FailNext makes the next request answer with an engine error envelope.
func (c *Core) FailNext(code int, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failCode, c.failMsg = code, msg
}

// CommittedLen returns the number of visible documents.
func (c *Core) CommittedLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.committed)
}

type responseHeader struct {
	Status int `json:"status"`
	QTime  int `json:"QTime"`
}

type errorBody struct {
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

func (c *Core) takeFailure() (int, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failCode == 0 {
		return 0, "", false
	}
	code, msg := c.failCode, c.failMsg
	c.failCode, c.failMsg = 0, ""
	return code, msg, true
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]errorBody{
		"error": {Msg: msg, Code: code},
	})
}

func writeUpdateOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]responseHeader{
		"responseHeader": {Status: 0, QTime: 1},
	})
}

func (c *Core) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if code, msg, ok := c.takeFailure(); ok {
		writeError(w, code, msg)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	trimmed := bytes.TrimSpace(body)

	c.mu.Lock()
	defer c.mu.Unlock()

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var docs []json.RawMessage
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			writeError(w, http.StatusBadRequest, "malformed add body")
			return
		}
		c.pending = append(c.pending, docs...)
		writeUpdateOK(w)
		return
	}

	var cmd map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &cmd); err != nil {
		writeError(w, http.StatusBadRequest, "malformed update command")
		return
	}
	switch {
	case has(cmd, "commit"):
		c.committed = append(c.committed, c.pending...)
		c.pending = nil
	case has(cmd, "rollback"):
		c.pending = nil
	case has(cmd, "optimize"):
		// no-op for the in-memory store
	case has(cmd, "delete"):
		var spec struct {
			Query string `json:"query"`
			ID    string `json:"id"`
		}
		if err := json.Unmarshal(cmd["delete"], &spec); err != nil {
			writeError(w, http.StatusBadRequest, "malformed delete command")
			return
		}
		q := spec.Query
		if spec.ID != "" {
			q = "id:" + spec.ID
		}
		kept := c.committed[:0:0]
		for _, doc := range c.committed {
			if !matches(q, doc) {
				kept = append(kept, doc)
			}
		}
		c.committed = kept
	default:
		writeError(w, http.StatusBadRequest, "unknown update command")
		return
	}
	writeUpdateOK(w)
}

func (c *Core) handleSelect(w http.ResponseWriter, r *http.Request) {
	if code, msg, ok := c.takeFailure(); ok {
		writeError(w, code, msg)
		return
	}

	q := r.URL.Query().Get("q")
	rows := intParam(r, "rows", 10)
	start := intParam(r, "start", 0)

	c.mu.Lock()
	matched := make([]json.RawMessage, 0, len(c.committed))
	for _, doc := range c.committed {
		if matches(q, doc) {
			matched = append(matched, doc)
		}
	}
	c.mu.Unlock()

	page := make([]json.RawMessage, 0, rows)
	for i := start; i < len(matched) && i < start+rows; i++ {
		page = append(page, matched[i])
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		ResponseHeader responseHeader `json:"responseHeader"`
		Response       struct {
			NumFound int               `json:"numFound"`
			Start    int               `json:"start"`
			Docs     []json.RawMessage `json:"docs"`
		} `json:"response"`
	}{
		ResponseHeader: responseHeader{Status: 0, QTime: 1},
		Response: struct {
			NumFound int               `json:"numFound"`
			Start    int               `json:"start"`
			Docs     []json.RawMessage `json:"docs"`
		}{NumFound: len(matched), Start: start, Docs: page},
	})
}

func has(cmd map[string]json.RawMessage, key string) bool {
	_, ok := cmd[key]
	return ok
}

func intParam(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// matches evaluates the tiny query subset the fake supports: match-all
// and exact "field:value" comparison against the stringified field.
func matches(q string, doc json.RawMessage) bool {
	if q == "" || q == "*:*" {
		return true
	}
	field, want, ok := strings.Cut(q, ":")
	if !ok {
		return false
	}
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return false
	}
	got, ok := m[field]
	if !ok {
		return false
	}
	return fmt.Sprint(got) == want
}
