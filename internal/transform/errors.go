package transform

import "errors"

// Rejection reasons beyond the entry validation errors in domain.
var (
	ErrMalformedProperty = errors.New("malformed page property")
	ErrMalformedPayload  = errors.New("malformed block payload")
	ErrMissingBlockID    = errors.New("block id is missing")
	ErrMissingMedia      = errors.New("media block has neither an external nor a hosted source")
)
