package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrFileExists is returned by CreateYAML when the target is already there.
var ErrFileExists = errors.New("file already exists")

// Manager provides file operation functionality
type Manager interface {
	EnsureDir(path string) error
	WriteFile(path string, content []byte) error
	FileExists(path string) bool
	WriteObjectAsYAML(path string, object interface{}) error
	CreateObjectAsYAML(path string, object interface{}) error
}

// DefaultManager implements the Manager interface
type DefaultManager struct {
}

// NewFileOpsManager creates a new default file manager
func NewFileOpsManager() Manager {
	return &DefaultManager{}
}

// EnsureDir creates a directory if it doesn't exist
func (m *DefaultManager) EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile replaces path with content, creating directories as needed. The
// content is written to a temporary file in the same directory first so a
// reader never sees a partial file.
func (m *DefaultManager) WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := m.EnsureDir(dir); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing to file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing file: %w", err)
	}
	return nil
}

// FileExists checks if a file exists
func (m *DefaultManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteObjectAsYAML marshals an object to YAML and writes it to a file
func (m *DefaultManager) WriteObjectAsYAML(path string, object interface{}) error {
	data, err := yaml.Marshal(object)
	if err != nil {
		return fmt.Errorf("error marshalling to YAML: %w", err)
	}
	return m.WriteFile(path, data)
}

// CreateObjectAsYAML is WriteObjectAsYAML for a file that must not exist yet.
func (m *DefaultManager) CreateObjectAsYAML(path string, object interface{}) error {
	if m.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	return m.WriteObjectAsYAML(path, object)
}
