package domain

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  *Error
		kind error
	}{
		{NewTransportError(errors.New("connection refused")), ErrTransport},
		{NewParseError(errors.New("invalid character")), ErrParse},
		{NewMalformedError("responseHeader not found"), ErrMalformedResponse},
		{NewServerError(400, "bad request"), ErrServer},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.kind) {
			t.Errorf("%v does not wrap %v", c.err, c.kind)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	e := NewServerError(400, "bad request")
	if e.Status != 400 {
		t.Errorf("Status = %d, want 400", e.Status)
	}
	if got := e.Error(); got != "solr: bad request (status 400)" {
		t.Errorf("Error() = %q", got)
	}

	te := NewTransportError(errors.New("connection refused"))
	if te.Status != 0 || te.Time != 0 {
		t.Errorf("transport error status/time = %d/%d, want 0/0", te.Status, te.Time)
	}
	if got := te.Error(); got != "solr: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}
