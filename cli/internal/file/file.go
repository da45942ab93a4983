// Package file writes the output files of the CLI.
package file

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer stores decoded quotes in a file on an afero filesystem.
type Writer struct {
	fs   afero.Fs
	path string
}

// New returns a Writer for path, or nil if path is empty.
func New(path string, fs afero.Fs) *Writer {
	if path == "" {
		return nil
	}
	return &Writer{fs: fs, path: path}
}

// Write replaces the content of the file with data.
// Missing parent directories are created.
func (w *Writer) Write(data []byte) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory of %s: %w", w.path, err)
		}
	}
	if err := afero.WriteFile(w.fs, w.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	return nil
}

// Path returns the path of the file.
func (w *Writer) Path() string {
	return w.path
}
