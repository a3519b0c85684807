package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Collision handling limit for numbered filename suffixes
const (
	MaxNameAttempts = 1000
)

// DirectorySaver writes delivered files into a target directory, resolved at
// save time so a settings change takes effect immediately.
type DirectorySaver struct {
	dir func() string
}

// NewDirectorySaver creates a saver that writes into the directory returned
// by the given function.
func NewDirectorySaver(dir func() string) *DirectorySaver {
	return &DirectorySaver{dir: dir}
}

// Save writes data under the given name inside the target directory and
// returns the full path. Existing files are never overwritten; a numbered
// suffix is appended instead.
func (s *DirectorySaver) Save(name string, data []byte) (string, error) {
	dir := s.dir()
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := uniquePath(dir, filepath.Base(name))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// uniquePath returns a path in dir that does not collide with an existing
// file, appending " (n)" before the extension when needed.
func uniquePath(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= MaxNameAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a free name for %s in %s", name, dir)
}
