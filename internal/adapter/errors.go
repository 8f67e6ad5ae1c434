package adapter

import "errors"

// Errors describing why the generation endpoint rejected a request. They are
// never returned to callers of [TextGenerator]; they classify failures for
// logging.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("model not found")
	ErrTooManyRequests     = errors.New("quota exhausted")
	ErrInternalServerError = errors.New("generation service internal error")
	ErrServiceUnavailable  = errors.New("generation service unavailable")

	ErrEmptyAddress = errors.New("empty address")
)
