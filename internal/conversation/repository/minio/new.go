package minio

import (
	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
)

type implRepository struct {
	storage pkgMinio.FileManager
	bucket  string
	l       log.Logger
}

// New - Factory function
func New(storage pkgMinio.FileManager, bucket string, l log.Logger) repository.ImageRepository {
	return &implRepository{
		storage: storage,
		bucket:  bucket,
		l:       l,
	}
}
