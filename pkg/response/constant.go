package response

const (
	// DateFormat is the layout used by Date.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the layout used by DateTime.
	DateTimeFormat = "2006-01-02 15:04:05"

	// MessageSuccess is the message of every successful Resp.
	MessageSuccess = "Success"
	// MessageUnauthorized is returned by Unauthorized.
	MessageUnauthorized = "Unauthorized"
	// MessageInternalError is returned for unmapped errors and panics.
	MessageInternalError = "Something went wrong"

	// ErrorCodeUnauthorized is the error code of Unauthorized.
	ErrorCodeUnauthorized = 401
	// ErrorCodeInternal is the error code for panics.
	ErrorCodeInternal = 500
)
