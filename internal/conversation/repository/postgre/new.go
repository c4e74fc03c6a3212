package postgre

import (
	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/pkg/log"
	pkgPostgre "chatbot-srv/pkg/postgre"
)

type implRepository struct {
	db pkgPostgre.IDatabase
	l  log.Logger
}

// New - Factory function
func New(db pkgPostgre.IDatabase, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
