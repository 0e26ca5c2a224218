package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores each key in its own "<key>.json" file inside a directory.
type File struct {
	dir string
}

// OpenFile opens a File store in 'dir', creating the directory if needed.
func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create storage directory %q: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (s *File) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *File) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, err
}

// Set writes to a temporary file first, then renames it over the previous value.
func (s *File) Set(key string, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *File) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *File) Close() error { return nil }
