package gemini

import "time"

const (
	// BaseURL is the Gemini REST root.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// UploadURL is the File API media upload endpoint.
	UploadURL = "https://generativelanguage.googleapis.com/upload/v1beta/files"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	DefaultTimeout       = 60 * time.Second
	DefaultTemperature   = 0.7
	DefaultMaxOutputToks = 1024

	RoleUser  = "user"
	RoleModel = "model"

	MimeTypeText = "text/plain"
)

// Finish reasons reported on a candidate.
const (
	FinishReasonStop       = "STOP"
	FinishReasonMaxTokens  = "MAX_TOKENS"
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
)
