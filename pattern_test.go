package portrunner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPattern(t *testing.T) {
	dir := t.TempDir()

	data := []byte("the quick brown fox\x00\x01\x02")
	path := filepath.Join(dir, "pattern.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	pattern, err := LoadPattern(path)
	if err != nil {
		t.Fatalf("LoadPattern failed: %v", err)
	}
	if !bytes.Equal(pattern, data) {
		t.Errorf("LoadPattern = %q, want %q", pattern, data)
	}
}

func TestLoadPatternEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadPattern(path)
	if !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("LoadPattern(empty) error = %v, want ErrEmptyPattern", err)
	}
}

func TestLoadPatternMissingFile(t *testing.T) {
	_, err := LoadPattern(filepath.Join(t.TempDir(), "nope.bin"))
	if !errors.Is(err, ErrPatternOpen) {
		t.Errorf("LoadPattern(missing) error = %v, want ErrPatternOpen", err)
	}
}
