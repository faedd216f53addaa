package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage writes uploaded files under a base directory on the local disk.
type Storage struct {
	baseDir string
}

func New(baseDir string) (*Storage, error) {
	if baseDir == "" {
		baseDir = "data/uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{baseDir: baseDir}, nil
}

// Save streams data to <baseDir>/<name> and returns the stored path.
func (s *Storage) Save(_ context.Context, name string, data io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
