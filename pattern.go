package portrunner

import (
	"fmt"
	"io"
	"os"
)

// LoadPattern reads the entire contents of the file at path and returns it
// as the reference pattern. Each step of the load fails with its own error
// class so callers can report and exit distinctly: open, stat, read. An
// empty file is a configuration error, not a valid pattern.
func LoadPattern(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrPatternOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrPatternStat, path, err)
	}

	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEmptyPattern, path)
	}

	pattern := make([]byte, info.Size())
	if _, err := io.ReadFull(f, pattern); err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrPatternRead, path, err)
	}

	return pattern, nil
}
