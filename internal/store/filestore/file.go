// Package filestore implements the pattern store on top of a directory
// of JSON files, one file per pattern, resolved under the user's home
// directory.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yiblet/gf/internal/logging"
	"github.com/yiblet/gf/internal/store"
)

const (
	// ConfigSubdir is preferred when it already exists under home.
	ConfigSubdir = ".config/gf"
	// FallbackSubdir is used otherwise and created on first save.
	FallbackSubdir = ".gf"

	patternExt = ".json"
)

// FileStore is a PatternStore backed by a flat directory of
// <name>.json files.
type FileStore struct {
	dir    string
	logger zerolog.Logger
}

var _ store.PatternStore = (*FileStore)(nil)

// New creates a file store at the default pattern directory:
// ~/.config/gf if it exists, ~/.gf otherwise.
func New() (*FileStore, error) {
	return NewWithDir("")
}

// NewWithDir creates a file store rooted at dir. An empty dir selects
// the default pattern directory.
func NewWithDir(dir string) (*FileStore, error) {
	if dir == "" {
		resolved, err := defaultDir()
		if err != nil {
			return nil, err
		}
		dir = resolved
	}

	logger := logging.GetLogger("store")
	logger.Debug().Str("dir", dir).Msg("pattern directory resolved")

	return &FileStore{dir: dir, logger: logger}, nil
}

// defaultDir resolves the pattern directory under the user's home.
func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Could not determine home directory: %w", err)
	}

	configDir := filepath.Join(home, ConfigSubdir)
	if _, err := os.Stat(configDir); err == nil {
		return configDir, nil
	}

	return filepath.Join(home, FallbackSubdir), nil
}

// Dir returns the pattern directory backing this store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file a pattern with the given name would live at.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+patternExt)
}

// List enumerates saved pattern names. A pattern directory that does
// not exist yet yields an empty list.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read pattern directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != patternExt {
			continue
		}
		names = append(names, strings.TrimSuffix(name, patternExt))
	}

	return names, nil
}

// Create writes a new pattern file. The open is create-exclusive, so a
// concurrent save of the same name fails rather than overwriting.
// Pattern files hold non-secret preferences and are created 0666,
// subject to the umask.
func (s *FileStore) Create(name string, rec *store.Pattern) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("Failed to create pattern directory: %w", err)
	}

	path := s.Path(name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return &store.AlreadyExistsError{Path: path, Err: err}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		f.Close()
		return fmt.Errorf("Failed to write pattern file: %w", err)
	}

	s.logger.Debug().Str("name", name).Str("path", path).Msg("pattern saved")

	return f.Close()
}

// Get loads a pattern file by name.
func (s *FileStore) Get(name string) (*store.Pattern, error) {
	path := s.Path(name)

	f, err := os.Open(path)
	if err != nil {
		return nil, &store.NotFoundError{Name: name, Err: err}
	}
	defer f.Close()

	var rec store.Pattern
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return nil, &store.MalformedError{Path: path, Err: err}
	}

	s.logger.Debug().Str("name", name).Str("path", path).Msg("pattern loaded")

	return &rec, nil
}
