package playlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"m3u-rebase/internal/filesystem"
)

// Read loads and parses the playlist file at path.
func Read(path string) (*Document, error) {
	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Write saves the document's content to path. An existing destination is
// never overwritten: the write is an exclusive create and an existing file
// yields an *OutputConflictError. Missing parent directories are created.
func (d *Document) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	err := filesystem.WriteFileExclWithRetry(path, []byte(d.content), 0o644, filesystem.DefaultRetryConfig())
	if errors.Is(err, fs.ErrExist) {
		return &OutputConflictError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("failed to write playlist %s: %w", path, err)
	}
	return nil
}
