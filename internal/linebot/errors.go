package linebot

import "errors"

var (
	ErrInvalidSignature = errors.New("linebot: invalid signature")
	ErrInvalidPayload   = errors.New("linebot: invalid webhook payload")
	ErrEmptyContent     = errors.New("linebot: empty message content")
)
