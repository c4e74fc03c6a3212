package chatbot

import (
	"errors"
	"strings"
)

// Domain errors. TurnError wraps one of these with the message shown to clients.
var (
	ErrMessageRequired      = errors.New("chatbot: message is required")
	ErrImageRequired        = errors.New("chatbot: image is required")
	ErrModelTransport       = errors.New("chatbot: model request failed")
	ErrModelStatus          = errors.New("chatbot: model returned an error status")
	ErrEmptyResponse        = errors.New("chatbot: empty model response")
	ErrEmptyStop            = errors.New("chatbot: empty model response after STOP")
	ErrPromptBlocked        = errors.New("chatbot: prompt blocked")
	ErrUnexpectedFormat     = errors.New("chatbot: unexpected model response format")
	ErrTooManyFunctionCalls = errors.New("chatbot: too many function calls")
	ErrRecordFailed         = errors.New("chatbot: failed to record conversation")
)

// TurnError is a failed model turn.
type TurnError struct {
	Kind    error
	Message string
	Status  int
}

func (e *TurnError) Error() string { return e.Message }

func (e *TurnError) Unwrap() error { return e.Kind }

// IsRateLimited reports whether err came from a rate-limited model call.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var te *TurnError
	if errors.As(err, &te) && te.Status == 429 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "RATE_LIMIT_EXCEEDED") || strings.Contains(msg, "429")
}
