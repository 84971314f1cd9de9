package patch

import (
	"os"
)

// Store gives access to migration source files.
type Store interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

// FileStore is a [Store] backed by the local file system.
type FileStore struct{}

// ReadFile reads the whole file.
func (FileStore) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// WriteFile replaces the file content, keeping its permissions.
func (FileStore) WriteFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}

// Remove deletes the file.
func (FileStore) Remove(path string) error { return os.Remove(path) }
