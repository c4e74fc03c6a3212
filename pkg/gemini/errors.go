package gemini

import "errors"

var (
	// ErrAPIKeyRequired is returned by New when no key is configured.
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	// ErrTransport wraps network failures reaching the API.
	ErrTransport = errors.New("gemini: transport error")
	// ErrDecode is returned when a 2xx body cannot be decoded.
	ErrDecode = errors.New("gemini: cannot decode response")
)
