package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists rendered documents on the local filesystem under a
// fixed base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir. The directory is
// created on first save if it does not exist.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// Save writes content under the base directory and returns the full path.
// The filename is sanitized to a single path element.
func (s *LocalStorage) Save(filename string, content []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create document directory: %w", err)
	}

	path := filepath.Join(s.baseDir, sanitizeFilename(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return path, nil
}

// sanitizeFilename strips path separators and traversal sequences
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	name = strings.ReplaceAll(name, "..", "")
	name = strings.TrimSpace(name)
	if name == "" {
		name = "document.html"
	}
	return filepath.Base(name)
}
