package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store reads and writes named profiles in a single TOML file.
// The file maps profile names to nested tables; unknown keys and
// free-form sections round-trip untouched.
type Store struct {
	path string
}

// Open returns a Store backed by the TOML file at path.
// The file does not need to exist yet; a missing file reads as empty.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads all profiles from the backing file.
func (s *Store) Load() (map[string]map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading profiles file %s: %w", s.path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profiles file %s: %w", s.path, err)
	}

	profiles := make(map[string]map[string]any, len(raw))
	for name, v := range raw {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("profiles file %s: entry %q is not a table", s.path, name)
		}
		profiles[name] = table
	}
	return profiles, nil
}

// Save writes all profiles to the backing file, creating the parent
// directory if needed.
func (s *Store) Save(profiles map[string]map[string]any) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating profiles directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(profiles); err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing profiles file %s: %w", s.path, err)
	}
	return nil
}

// Get returns a single profile by name, or nil if it does not exist.
func (s *Store) Get(name string) (map[string]any, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	return profiles[name], nil
}

// Set creates or replaces a single profile.
func (s *Store) Set(name string, config map[string]any) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	profiles[name] = config
	return s.Save(profiles)
}

// Delete removes a profile by name. It reports whether the profile existed.
func (s *Store) Delete(name string) (bool, error) {
	profiles, err := s.Load()
	if err != nil {
		return false, err
	}
	if _, ok := profiles[name]; !ok {
		return false, nil
	}
	delete(profiles, name)
	if err := s.Save(profiles); err != nil {
		return false, err
	}
	return true, nil
}
