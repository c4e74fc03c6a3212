package filemanager

import (
	"context"
	"time"

	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
)

// IFileManager memoizes File API uploads by key, content hash and age.
// Implementations are safe for concurrent use within one process.
type IFileManager interface {
	// GetOrUpload returns the cached entry for key when it is younger than maxAge and
	// its hash matches content. Otherwise it uploads content and replaces the entry.
	// A failed upload leaves the store untouched.
	GetOrUpload(ctx context.Context, key string, content []byte, displayName string, maxAge time.Duration) (Entry, error)
	// Upload always uploads and replaces the entry for key.
	Upload(ctx context.Context, key string, content []byte, displayName string) (Entry, error)
	// Entries returns a snapshot of the store.
	Entries() (map[string]Entry, error)
	// Clear empties the store. Remote files are not deleted.
	Clear() error
}

// New creates a file manager persisting its cache at path.
func New(uploader gemini.FileStore, path string, l log.Logger) IFileManager {
	return &implFileManager{
		uploader: uploader,
		store:    newJSONStore(path),
		now:      time.Now,
		l:        l,
	}
}
