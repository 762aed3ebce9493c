package invoice

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage archives the original uploaded documents alongside the records
// extracted from them.
type Storage interface {
	// Save saves an upload and returns the path/filename
	Save(filename string, data []byte) (string, error)

	// Get retrieves an upload by path
	Get(path string) ([]byte, error)

	// Delete removes an upload
	Delete(path string) error
}

// DiskStorage implements the Storage interface on the local filesystem
type DiskStorage struct {
	basePath string
}

// NewDiskStorage creates a DiskStorage rooted at basePath, creating the
// directory if needed.
func NewDiskStorage(basePath string) (*DiskStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	return &DiskStorage{
		basePath: basePath,
	}, nil
}

// Save writes an upload under the storage root.
func (d *DiskStorage) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(d.basePath, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return filename, nil
}

// Get retrieves an upload from local storage.
func (d *DiskStorage) Get(path string) ([]byte, error) {
	fullPath := filepath.Join(d.basePath, path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Delete removes an upload from local storage.
func (d *DiskStorage) Delete(path string) error {
	fullPath := filepath.Join(d.basePath, path)
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
