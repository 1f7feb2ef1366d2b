// Package codec encodes update commands and decodes the engine's JSON
// response envelopes into typed values.
//
// Decoding is deliberately tolerant of partial damage: after the first
// structural problem the walk keeps going, so the whole envelope is
// diagnosed in one pass, but any recorded problem turns the final result
// into an error. The first recorded message is the one surfaced; it names
// the offending JSON path.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/solrkit/internal/domain"
)

// DecodeUpdate decodes an update response: an object whose responseHeader
// carries QTime and status.
func DecodeUpdate(raw []byte) (domain.UpdateResponse, error) {
	top, derr := topObject(raw)
	if derr != nil {
		return domain.UpdateResponse{}, derr
	}

	var resp domain.UpdateResponse
	w := &walker{}
	if header := w.section(top, "responseHeader"); header != nil {
		resp.Time = int(w.intField(header, "responseHeader", "QTime"))
		resp.Status = int(w.intField(header, "responseHeader", "status"))
	}
	if w.problem != "" {
		return domain.UpdateResponse{}, domain.NewMalformedError(w.problem)
	}
	return resp, nil
}

// DecodeQuery decodes a select response: responseHeader plus a response
// section with numFound, start and the docs page.
func DecodeQuery(raw []byte) (domain.QueryResponse, error) {
	top, derr := topObject(raw)
	if derr != nil {
		return domain.QueryResponse{}, derr
	}

	var resp domain.QueryResponse
	w := &walker{}
	if header := w.section(top, "responseHeader"); header != nil {
		resp.Time = int(w.intField(header, "responseHeader", "QTime"))
		resp.Status = int(w.intField(header, "responseHeader", "status"))
	}
	if body := w.section(top, "response"); body != nil {
		resp.Total = w.uintField(body, "response", "numFound")
		resp.Start = w.uintField(body, "response", "start")
		resp.Docs = w.docs(body)
	}
	if w.problem != "" {
		return domain.QueryResponse{}, domain.NewMalformedError(w.problem)
	}
	return resp, nil
}

// DecodeError decodes the engine's error envelope ({"error":{"msg","code"}})
// from an HTTP error response. When the envelope is absent or damaged the
// HTTP status and raw body are surfaced instead, so a failing request
// always yields a server error with the best available detail.
func DecodeError(httpStatus int, raw []byte) *domain.Error {
	top, derr := topObject(raw)
	if derr == nil {
		w := &walker{}
		if env := w.section(top, "error"); env != nil {
			msg := w.stringField(env, "error", "msg")
			code := int(w.intField(env, "error", "code"))
			if w.problem == "" {
				return domain.NewServerError(code, msg)
			}
		}
	}
	return domain.NewServerError(httpStatus, strings.TrimSpace(string(raw)))
}

// topObject parses raw bytes as a generic JSON object. A parse failure is
// terminal (ParseFailure); a well-formed non-object top level is terminal
// too (MalformedResponse).
func topObject(raw []byte) (map[string]json.RawMessage, *domain.Error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.NewMalformedError("response is not a JSON object")
		}
		return nil, domain.NewParseError(err)
	}
	if top == nil { // JSON null
		return nil, domain.NewMalformedError("response is not a JSON object")
	}
	return top, nil
}

// walker accumulates the outcome of one envelope traversal. The first
// problem wins; later ones are diagnosed but not surfaced.
type walker struct {
	problem string
}

func (w *walker) fail(msg string) {
	if w.problem == "" {
		w.problem = msg
	}
}

// section looks up a nested object, recording a path-specific problem on a
// missing key or a non-object value.
func (w *walker) section(top map[string]json.RawMessage, name string) map[string]json.RawMessage {
	raw, ok := top[name]
	if !ok {
		w.fail(name + " not found")
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		w.fail(name + " is not a JSON object")
		return nil
	}
	return obj
}

func (w *walker) intField(obj map[string]json.RawMessage, section, key string) int64 {
	n, ok := w.number(obj, section, key)
	if !ok {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		w.fail(section + "." + key + " is not an integer")
		return 0
	}
	return i
}

func (w *walker) uintField(obj map[string]json.RawMessage, section, key string) uint64 {
	n, ok := w.number(obj, section, key)
	if !ok {
		return 0
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		w.fail(section + "." + key + " is not a non-negative integer")
		return 0
	}
	return u
}

func (w *walker) number(obj map[string]json.RawMessage, section, key string) (json.Number, bool) {
	raw, ok := obj[key]
	if !ok {
		w.fail(section + "." + key + " not found")
		return "", false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		w.fail(section + "." + key + " is not a number")
		return "", false
	}
	return n, true
}

func (w *walker) stringField(obj map[string]json.RawMessage, section, key string) string {
	raw, ok := obj[key]
	if !ok {
		w.fail(section + "." + key + " not found")
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		w.fail(section + "." + key + " is not a string")
		return ""
	}
	return s
}

// docs decodes the response.docs array. A non-object element is recorded
// as a problem but does not stop the remaining elements from decoding.
func (w *walker) docs(body map[string]json.RawMessage) []domain.Document {
	raw, ok := body["docs"]
	if !ok {
		w.fail("response.docs not found")
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		w.fail("response.docs is not a JSON array")
		return nil
	}

	docs := make([]domain.Document, 0, len(elems))
	for i, el := range elems {
		var d domain.Document
		if err := json.Unmarshal(el, &d); err != nil {
			w.fail(fmt.Sprintf("response.docs[%d] is not a JSON object", i))
			continue
		}
		docs = append(docs, d)
	}
	return docs
}
