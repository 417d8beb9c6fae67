// Package fs provides file-based export of keyword lists.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/keyterms"
)

// Ensure Saver implements keyterms.FileSaver at compile time.
var _ keyterms.FileSaver = (*Saver)(nil)

// Saver implements keyterms.FileSaver with atomic update semantics.
// Content is written to a temporary file next to the target, then renamed
// into place. The temporary file never outlives SaveFile.
type Saver struct {
	dir string
}

// NewSaver creates a Saver that writes into dir.
func NewSaver(dir string) *Saver {
	return &Saver{dir: dir}
}

// SaveFile writes content to dir/name, replacing any existing file, and
// returns the written path. Only the base of name is used.
func (s *Saver) SaveFile(ctx context.Context, name string, content string) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", errors.New("file name required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return "", err
	}

	finalPath := filepath.Join(s.dir, name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", err
	}

	return finalPath, nil
}
