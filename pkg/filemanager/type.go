package filemanager

import (
	"sync"
	"time"

	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
)

// Entry is one cached upload.
type Entry struct {
	FileURI     string `json:"fileUri"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	UploadedAt  int64  `json:"uploadedAt"`
	ContentHash string `json:"contentHash"`
	ContentSize int    `json:"contentSize"`
	// Cached is set on entries served from the store.
	Cached bool `json:"-"`
}

type implFileManager struct {
	uploader gemini.FileStore
	store    *jsonStore
	now      func() time.Time
	l        log.Logger
}

// jsonStore is the whole cache as one JSON document.
type jsonStore struct {
	path string
	mu   sync.Mutex
}
