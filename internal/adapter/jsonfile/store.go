// Package jsonfile persists the settings document as an indented JSON file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/cobalt/screentime/internal/domain"
)

type Store struct {
	mu       sync.Mutex
	filePath string
}

func New(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Path returns the location of the settings file.
func (s *Store) Path() string { return s.filePath }

// Load reads the document, merging defaults over anything missing.
// A missing file yields the default document.
func (s *Store) Load() (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", s.filePath, err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", s.filePath, err)
	}
	settings.Normalize()
	return &settings, nil
}

// Save writes the whole document, stamping a fresh revision so readers can
// tell whether anything changed since they last loaded.
func (s *Store) Save(settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.Revision = uuid.New().String()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write settings %s: %w", s.filePath, err)
	}
	return nil
}
