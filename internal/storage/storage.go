// Package storage persists named records as JSON files in a data directory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ttrack/internal/models"
	"ttrack/internal/tracker"
)

// Record keys
const (
	KeyProjects    = "projects"
	KeyTimeEntries = "timeEntries"
)

// Storage is a key-value store with one JSON file per key
type Storage struct {
	BaseDir string

	logger *slog.Logger
	mu     sync.Mutex
}

// NewStorage creates a storage rooted at baseDir. A nil logger discards output.
func NewStorage(baseDir string, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Storage{BaseDir: baseDir, logger: logger}
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.BaseDir, key+".json"), nil
}

// Exists reports whether a record has been saved under key
func (s *Storage) Exists(key string) bool {
	path, err := s.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the record under key into a T. It never fails: a missing record
// yields def silently, and unreadable or malformed data is logged and yields def.
func Load[T any](s *Storage, key string, def T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(key)
	if err != nil {
		s.logger.Error("error loading data", "key", key, "error", err)
		return def
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("error loading data", "key", key, "path", path, "error", err)
		}
		return def
	}
	if len(data) == 0 {
		return def
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Error("error loading data", "key", key, "path", path, "error", err)
		return def
	}

	s.logger.Debug("loaded record", "key", key, "bytes", len(data))
	return value
}

// Save serializes value and atomically replaces the record under key
func (s *Storage) Save(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s: %w", key, err)
	}

	s.logger.Debug("saved record", "key", key, "bytes", len(data))
	return nil
}

// LoadState reads both collections. Missing records fall back to the sample
// data when seed is set, and to empty collections otherwise.
func (s *Storage) LoadState(seed bool) tracker.State {
	var (
		projects = []models.Project{}
		entries  = []models.TimeEntry{}
	)
	if seed {
		projects = models.SeedProjects()
		entries = models.SeedTimeEntries()
	}

	return tracker.State{
		Projects: Load(s, KeyProjects, projects),
		Entries:  Load(s, KeyTimeEntries, entries),
	}
}

// Persist saves the full collections of next. Its signature matches
// tracker.Subscriber so it can be registered on a Store.
func (s *Storage) Persist(_, next tracker.State) error {
	projects := next.Projects
	if projects == nil {
		projects = []models.Project{}
	}
	entries := next.Entries
	if entries == nil {
		entries = []models.TimeEntry{}
	}

	if err := s.Save(KeyProjects, projects); err != nil {
		return err
	}
	return s.Save(KeyTimeEntries, entries)
}
