package product

import "errors"

var (
	// ErrUnavailable means the API could not be reached and no cached copy exists.
	ErrUnavailable = errors.New("product: api unavailable")
	// ErrNotConfigured means the endpoint URL for the call is empty.
	ErrNotConfigured = errors.New("product: endpoint not configured")
)
