package postgre

import (
	"database/sql"
	"sync"

	"chatbot-srv/pkg/log"
)

// Config tunes the reconnect behaviour.
type Config struct {
	MaxRetries int
}

type implDatabase struct {
	mu          sync.RWMutex
	reconnectMu sync.Mutex
	db          *sql.DB
	open        Opener
	cfg         Config
	l           log.Logger
}
