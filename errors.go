package solrkit

import "github.com/kailas-cloud/solrkit/internal/domain"

// Error is the failure value returned by every client operation. Status 0
// means the server was never reached; Message names the offending JSON
// path when the server responded with something unexpected.
type Error = domain.Error

// Sentinel failure kinds re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrTransport         = domain.ErrTransport
	ErrServer            = domain.ErrServer
	ErrMalformedResponse = domain.ErrMalformedResponse
	ErrParse             = domain.ErrParse
)
