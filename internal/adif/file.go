package adif

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExportIO is returned when the export destination cannot be created or written
var ErrExportIO = errors.New("export I/O error")

// WriteFile encodes the header and records to path. The data is written to a
// temporary file in the same directory and renamed into place, so path never
// holds a partial export.
func WriteFile(path string, header []Field, records [][]Field) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".qsolog-export-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrExportIO, err)
	}
	tmpPath := tmpFile.Name()

	if err := Encode(tmpFile, header, records); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrExportIO, path, err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file: %w", ErrExportIO, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: chmod temp file: %w", ErrExportIO, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename to %s: %w", ErrExportIO, path, err)
	}

	return nil
}
