package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yiblet/gf/internal/store"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewWithDir(filepath.Join(t.TempDir(), "patterns"))
	if err != nil {
		t.Fatalf("NewWithDir failed: %v", err)
	}
	return s
}

func TestFileStore_CreateAndList(t *testing.T) {
	s := newTestStore(t)

	rec := &store.Pattern{Flags: "-Hnri", Pattern: "import"}
	if err := s.Create("py-imports", rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(names) != 1 || names[0] != "py-imports" {
		t.Errorf("List = %v, want [py-imports]", names)
	}
}

func TestFileStore_CreateAndGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	rec := &store.Pattern{
		Flags:    "-Hnri",
		Patterns: []string{"foo", "bar"},
		Engine:   "rg",
	}
	if err := s.Create("multi", rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get("multi")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.Flags != "-Hnri" {
		t.Errorf("Flags = %q, want %q", got.Flags, "-Hnri")
	}
	if got.Pattern != "" {
		t.Errorf("Pattern = %q, want empty", got.Pattern)
	}
	if len(got.Patterns) != 2 || got.Patterns[0] != "foo" || got.Patterns[1] != "bar" {
		t.Errorf("Patterns = %v, want [foo bar]", got.Patterns)
	}
	if got.Engine != "rg" {
		t.Errorf("Engine = %q, want %q", got.Engine, "rg")
	}
}

func TestFileStore_DuplicateCreateFails(t *testing.T) {
	s := newTestStore(t)

	first := &store.Pattern{Pattern: "first"}
	if err := s.Create("dup", first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	second := &store.Pattern{Pattern: "second"}
	err := s.Create("dup", second)
	if err == nil {
		t.Fatal("second Create should have failed")
	}

	var existsErr *store.AlreadyExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("error = %T, want *store.AlreadyExistsError", err)
	}
	if existsErr.Path != s.Path("dup") {
		t.Errorf("Path = %q, want %q", existsErr.Path, s.Path("dup"))
	}

	// The failed save must not touch the original content.
	got, err := s.Get("dup")
	if err != nil {
		t.Fatalf("Get after failed Create: %v", err)
	}
	if got.Pattern != "first" {
		t.Errorf("Pattern = %q, want %q (original content overwritten)", got.Pattern, "first")
	}
}

func TestFileStore_ListMissingDir(t *testing.T) {
	s, err := NewWithDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("NewWithDir failed: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List on missing dir should not error, got: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List = %v, want empty", names)
	}
}

func TestFileStore_ListIgnoresNonPatternFiles(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("real", &store.Pattern{Pattern: "x"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != "real" {
		t.Errorf("List = %v, want [real]", names)
	}
}

func TestFileStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("nope")
	if err == nil {
		t.Fatal("Get of missing pattern should fail")
	}

	var notFound *store.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %T, want *store.NotFoundError", err)
	}
	if want := "No such pattern 'nope'"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFileStore_GetMalformed(t *testing.T) {
	s := newTestStore(t)

	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(s.Path("bad"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Get("bad")
	if err == nil {
		t.Fatal("Get of malformed pattern should fail")
	}

	var malformed *store.MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T, want *store.MalformedError", err)
	}
	if want := "Pattern file '" + s.Path("bad") + "' is malformed"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFileStore_OmitsEmptyFields(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("plain", &store.Pattern{Pattern: "needle"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	data, err := os.ReadFile(s.Path("plain"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	for _, field := range []string{"flags", "patterns", "engine"} {
		if strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("saved file should omit empty %q field: %s", field, data)
		}
	}
}

func TestDefaultDir_FallbackWithoutConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := filepath.Join(home, FallbackSubdir)
	if s.Dir() != want {
		t.Errorf("Dir = %q, want %q", s.Dir(), want)
	}
}

func TestDefaultDir_PrefersExistingConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ConfigSubdir)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Dir() != configDir {
		t.Errorf("Dir = %q, want %q", s.Dir(), configDir)
	}
}

func TestFileStore_CreateMakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "patterns")
	s, err := NewWithDir(dir)
	if err != nil {
		t.Fatalf("NewWithDir failed: %v", err)
	}

	if err := s.Create("first", &store.Pattern{Pattern: "x"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("pattern directory should exist after first save: %v", err)
	}
}
