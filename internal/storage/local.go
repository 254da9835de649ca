package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores cover images on the local filesystem and serves them
// through the API server's download endpoint.
type LocalStorage struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	coversDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	coversDir := filepath.Join(uploadDir, "covers")
	if err := os.MkdirAll(coversDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create covers directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		coversDir: coversDir,
	}, nil
}

func (s *LocalStorage) Save(key string, reader io.Reader) error {
	fullPath := filepath.Join(s.coversDir, filepath.Clean("/"+key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.coversDir, filepath.Clean("/"+key))
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(key string) error {
	fullPath := filepath.Join(s.coversDir, filepath.Clean("/"+key))
	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return fmt.Sprintf("%s/api/v1/covers/%s", s.baseURL, key)
}
