package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// FieldRequestID is the log field carrying the request id.
	FieldRequestID = "request_id"
)
