package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/markbook/bookmarks-browser/internal/platform"
)

// Environment override for the sync token. When set, the stored token is
// ignored and settings.json can stay credential-free.
const EnvGithubToken = "BOOKMARKS_GITHUB_TOKEN"

// Settings is the full persisted settings record. It is rewritten wholesale
// on every change; there are no partial field updates at the storage layer.
// All fields default on absence for forward compatibility.
type Settings struct {
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
	GithubToken      string `json:"github_token,omitempty"`
	GithubGistID     string `json:"github_gist_id,omitempty"`
}

// Store manages the settings record and its settings.json file
type Store struct {
	mu      sync.Mutex
	path    string
	current Settings
	log     zerolog.Logger
}

// Open loads settings from path. Missing or unreadable files yield the
// all-default record; startup never fails on bad settings.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, log: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Info().Str("path", path).Msg("no settings file, using defaults")
		return s
	}
	if err := json.Unmarshal(data, &s.current); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("settings file unreadable, using defaults")
		s.current = Settings{}
	}
	return s
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Save replaces the whole record and writes it through to disk
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return s.flush()
}

func (s *Store) flush() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.current, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Token returns the sync credential: the environment override when present,
// otherwise the stored token. Callers never see the rest of the record
// through this accessor.
func (s *Store) Token() string {
	if env := os.Getenv(EnvGithubToken); env != "" {
		return env
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.GithubToken
}

// GistID returns the persisted remote identifier, empty if none yet
func (s *Store) GistID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.GithubGistID
}

// SetGistID records the remote identifier returned by a first push and
// writes the record through to disk.
func (s *Store) SetGistID(id string) error {
	s.mu.Lock()
	s.current.GithubGistID = id
	s.mu.Unlock()
	return s.flush()
}
