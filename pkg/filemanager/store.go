package filemanager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func newJSONStore(path string) *jsonStore {
	return &jsonStore{path: path}
}

// load reads the store. A missing or unparseable file is an empty store.
func (s *jsonStore) load() map[string]Entry {
	entries := map[string]Entry{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return map[string]Entry{}
	}
	return entries
}

// update applies fn to a fresh read of the store and writes the whole file back.
func (s *jsonStore) update(fn func(entries map[string]Entry)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	fn(entries)
	return s.write(entries)
}

func (s *jsonStore) snapshot() map[string]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// write replaces the file through a temp file and rename.
func (s *jsonStore) write(entries map[string]Entry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal file cache: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".file-cache-*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
