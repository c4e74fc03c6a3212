package line

import "errors"

var (
	ErrAccessTokenRequired = errors.New("line: channel access token is required")
	// ErrRequestFailed wraps non-2xx answers from the LINE API.
	ErrRequestFailed = errors.New("line: request failed")
)
