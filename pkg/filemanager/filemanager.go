package filemanager

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"chatbot-srv/pkg/gemini"
)

func (m *implFileManager) GetOrUpload(ctx context.Context, key string, content []byte, displayName string, maxAge time.Duration) (Entry, error) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	hash := ContentHash(content)

	if cached, ok := m.store.snapshot()[key]; ok {
		age := m.now().Sub(time.Unix(cached.UploadedAt, 0))
		switch {
		case age >= maxAge:
			m.l.Infof(ctx, "pkg.filemanager.GetOrUpload: cache miss for %q: expired (age %s)", displayName, age.Round(time.Minute))
		case cached.ContentHash != hash:
			m.l.Infof(ctx, "pkg.filemanager.GetOrUpload: cache miss for %q: content changed (%s -> %s)", displayName, cached.ContentHash, hash)
		default:
			cached.Cached = true
			return cached, nil
		}
	}

	return m.upload(ctx, key, content, displayName, hash)
}

func (m *implFileManager) Upload(ctx context.Context, key string, content []byte, displayName string) (Entry, error) {
	return m.upload(ctx, key, content, displayName, ContentHash(content))
}

func (m *implFileManager) upload(ctx context.Context, key string, content []byte, displayName, hash string) (Entry, error) {
	f, err := m.uploader.UploadFile(ctx, content, displayName, gemini.MimeTypeText)
	if err != nil {
		return Entry{}, fmt.Errorf("upload %s: %w", displayName, err)
	}

	entry := Entry{
		FileURI:     f.URI,
		Name:        f.Name,
		DisplayName: displayName,
		UploadedAt:  m.now().Unix(),
		ContentHash: hash,
		ContentSize: len(content),
	}
	if err := m.store.update(func(entries map[string]Entry) { entries[key] = entry }); err != nil {
		// The upload itself succeeded, so the caller still gets a usable reference.
		m.l.Errorf(ctx, "pkg.filemanager.upload: persist cache entry failed: %v", err)
	}
	m.l.Infof(ctx, "pkg.filemanager.upload: uploaded %q as %s (%d bytes, hash %s)", displayName, f.Name, len(content), hash)
	return entry, nil
}

func (m *implFileManager) Entries() (map[string]Entry, error) {
	return m.store.snapshot(), nil
}

func (m *implFileManager) Clear() error {
	return m.store.update(func(entries map[string]Entry) {
		for k := range entries {
			delete(entries, k)
		}
	})
}

// ContentHash is the first 8 hex chars of the MD5 of content.
func ContentHash(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])[:hashLength]
}
