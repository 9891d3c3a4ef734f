package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSuffix marks project files inside the project directory
const FileSuffix = ".wavedeck.json"

// Store handles save/load for projects in one base directory
type Store struct {
	basePath string
}

// NewStore creates a store rooted at the given directory
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// FilePath returns the path for a project name
func (s *Store) FilePath(name string) string {
	return filepath.Join(s.basePath, name+FileSuffix)
}

// Exists checks if a project file exists
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.FilePath(name))
	return err == nil
}

// Save writes a project to disk at CurrentVersion
// The write goes through a temp file and rename so a crash mid-write never
// leaves a truncated project behind
func (s *Store) Save(p Project) error {
	if p.Name == "" {
		return fmt.Errorf("save project: empty name")
	}
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return err
	}

	p.Version = CurrentVersion
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, p.Name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.FilePath(p.Name))
}

// Load reads a project from disk, migrating old versions
func (s *Store) Load(name string) (Project, error) {
	data, err := os.ReadFile(s.FilePath(name))
	if err != nil {
		return Project{}, err
	}
	p, err := decode(data)
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", s.FilePath(name), err)
	}
	return p, nil
}

// List returns the names of all projects in the directory, sorted
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// ScanWAVs returns the WAV files under a directory, sorted, for building a
// project out of a folder of stems
func ScanWAVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
