package host

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// MigrationRegistry collects migration directories in registration order.
// Running migrations is the host application's job; the registry only tracks
// where they live and enumerates files.
type MigrationRegistry struct {
	dirs []string
}

// NewMigrationRegistry creates an empty registry.
func NewMigrationRegistry() *MigrationRegistry {
	return &MigrationRegistry{}
}

// AddDir appends a migrations directory. Duplicates are ignored.
func (r *MigrationRegistry) AddDir(dir string) {
	for _, existing := range r.dirs {
		if existing == dir {
			return
		}
	}
	r.dirs = append(r.dirs, dir)
}

// Dirs returns the registered directories in order.
func (r *MigrationRegistry) Dirs() []string { return r.dirs }

// Files returns every *.sql file across all registered directories, sorted
// by filename within each directory. Missing directories are skipped.
func (r *MigrationRegistry) Files() ([]string, error) {
	var files []string
	for _, dir := range r.dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(dir), "*.sql")
		if err != nil {
			return nil, fmt.Errorf("globbing migrations in %s: %w", dir, err)
		}
		sort.Strings(matches)
		for _, rel := range matches {
			files = append(files, filepath.Join(dir, rel))
		}
	}
	return files, nil
}
