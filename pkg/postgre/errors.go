package postgre

import "errors"

// ErrReconnectDisabled is returned when a retry is needed but the handle has no opener.
var ErrReconnectDisabled = errors.New("postgre: reconnect disabled")

// errDatabaseClosed is the text database/sql uses for calls on a closed *sql.DB; the error itself is unexported.
const errDatabaseClosed = "sql: database is closed"
