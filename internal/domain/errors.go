package domain

import (
	"errors"
	"fmt"
)

// Failure kinds, attached to every Error. Use errors.Is() to check.
var (
	// ErrTransport signals the request never reached the server.
	ErrTransport = errors.New("transport failure")
	// ErrServer signals a well-formed error envelope from the engine.
	ErrServer = errors.New("server error")
	// ErrMalformedResponse signals a response missing or mistyping an
	// expected field.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrParse signals response bytes that are not valid JSON.
	ErrParse = errors.New("response is not valid JSON")
)

// Error is the failure value returned by every client and decode
// operation. The message is specific enough to locate the offending JSON
// path when the server responded.
type Error struct {
	// Status is the HTTP status, or the engine error code for decoded
	// error envelopes. 0 means the server was never reached.
	Status int
	// Time is the elapsed time in milliseconds, 0 if unknown.
	Time int
	// Message describes what failed and where.
	Message string

	kind error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("solr: %s (status %d)", e.Message, e.Status)
	}
	return "solr: " + e.Message
}

func (e *Error) Unwrap() error { return e.kind }

// NewTransportError wraps a connection-level failure. Status stays 0: the
// request never produced a response.
func NewTransportError(err error) *Error {
	return &Error{Message: err.Error(), kind: ErrTransport}
}

// NewParseError wraps a JSON parse failure, carrying the parser's message.
func NewParseError(err error) *Error {
	return &Error{Message: err.Error(), kind: ErrParse}
}

// NewMalformedError reports a structurally unexpected response; msg names
// the missing or mistyped path.
func NewMalformedError(msg string) *Error {
	return &Error{Message: msg, kind: ErrMalformedResponse}
}

// NewServerError reports an error the engine itself returned.
func NewServerError(status int, msg string) *Error {
	return &Error{Status: status, Message: msg, kind: ErrServer}
}
