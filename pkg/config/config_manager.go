package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrKeyNotFound is returned when an environment key is unset or empty.
var ErrKeyNotFound = errors.New("configuration key not found")

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBool(key string) (bool, error)
	GetBoolWithDefault(key string, defaultValue bool) bool
}

// DefaultManager implements the Manager interface
type DefaultManager struct {
	lookup func(key string) (string, bool)
}

// NewConfigManager creates a manager backed by the process environment
func NewConfigManager() Manager {
	return &DefaultManager{lookup: os.LookupEnv}
}

// NewStaticManager creates a manager backed by a fixed set of values
func NewStaticManager(values map[string]string) Manager {
	return &DefaultManager{lookup: func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}}
}

// GetString gets a configuration value by key, returns error if not found
func (m *DefaultManager) GetString(key string) (string, error) {
	value, ok := m.lookup(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	value, err := m.GetString(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetInt gets an integer configuration value by key, returns error if not found or invalid
func (m *DefaultManager) GetInt(key string) (int, error) {
	value, err := m.GetString(key)
	if err != nil {
		return 0, err
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value: %s", key, value)
	}
	return intValue, nil
}

// GetIntWithDefault gets an integer configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	value, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetBool gets a boolean configuration value by key, returns error if not found or invalid
func (m *DefaultManager) GetBool(key string) (bool, error) {
	value, err := m.GetString(key)
	if err != nil {
		return false, err
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("configuration key %s has invalid boolean value: %s", key, value)
	}
	return boolValue, nil
}

// GetBoolWithDefault gets a boolean configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	value, err := m.GetBool(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading %s: %w", path, err)
		}
	}
	return nil
}
