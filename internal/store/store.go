package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/markbook/bookmarks-browser/internal/model"
	"github.com/markbook/bookmarks-browser/internal/platform"
)

// Store owns the live bookmark tree and its on-disk JSON representation.
// The UI thread mutates through Update; sync workers read through Snapshot
// and replace wholesale through Replace after a successful pull.
type Store struct {
	mu   sync.RWMutex
	path string
	tree *model.BookmarkStore
	log  zerolog.Logger
}

// Open loads the tree from path. Any read or parse failure falls back to
// the sample default tree; a corrupt file must never block startup.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, log: logger}
	s.tree = load(path, logger)
	return s
}

func load(path string, logger zerolog.Logger) *model.BookmarkStore {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Info().Str("path", path).Msg("no bookmarks file, starting with sample data")
		return model.DefaultStore()
	}

	var tree model.BookmarkStore
	if err := json.Unmarshal(data, &tree); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("bookmarks file unreadable, starting with sample data")
		return model.DefaultStore()
	}
	if tree.Folders == nil {
		tree.Folders = []model.Folder{}
	}
	return &tree
}

// Path returns the file the store persists to
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a deep copy of the current tree. Mutations made after
// the snapshot is taken are not reflected in it.
func (s *Store) Snapshot() *model.BookmarkStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Clone()
}

// Update applies a structural edit under the write lock. The edit's error,
// if any, is returned unchanged and nothing is persisted here; callers
// decide when to Save.
func (s *Store) Update(fn func(*model.BookmarkStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tree)
}

// Replace swaps in a whole new tree, last-write-wins. Used by pull.
func (s *Store) Replace(tree *model.BookmarkStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree.Clone()
}

// Save writes the current tree to disk, creating parent directories as
// needed. Unlike load, failures here are reported to the caller.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.tree, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
