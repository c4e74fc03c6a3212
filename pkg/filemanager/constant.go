package filemanager

import "time"

const (
	// DefaultMaxAge stays below the 48h lifetime of File API uploads.
	DefaultMaxAge = 46 * time.Hour
	// DefaultCacheFile is the store file name inside the cache directory.
	DefaultCacheFile = "file-cache.json"

	hashLength = 8
)
