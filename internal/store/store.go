// Package store locates and reads pick tree files. Each named tree is one
// plain-text file under the user's wtp data directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultTree is the tree name used when the user gives none.
const DefaultTree = "default"

// Store serves pick tree files from a single root directory.
type Store struct {
	Root string
}

// Default resolves the per-user data directory: $WTP_DATA_DIR if set, else
// $XDG_DATA_HOME/wtp, else ~/.local/share/wtp.
func Default() (*Store, error) {
	if dir := os.Getenv("WTP_DATA_DIR"); dir != "" {
		return &Store{Root: dir}, nil
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return &Store{Root: filepath.Join(dir, "wtp")}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &Store{Root: filepath.Join(home, ".local", "share", "wtp")}, nil
}

// Path returns the file path for a tree name. An empty name means the
// default tree.
func (s *Store) Path(name string) string {
	if name == "" {
		name = DefaultTree
	}
	return filepath.Join(s.Root, name)
}

// Read returns the full contents of a tree file.
func (s *Store) Read(name string) ([]byte, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pick tree %s: %w", path, err)
	}
	return data, nil
}

// Ensure creates the store directory if it does not exist yet.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Root, err)
	}
	return nil
}

// List returns the names of all pick trees in the store, sorted. A missing
// store directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
