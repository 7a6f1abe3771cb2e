package host

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// viewPattern matches template files under a registered view directory.
const viewPattern = "**/*.{tmpl,html}"

// ViewRegistry collects namespaced template directories. Templates are named
// "<namespace>::<relative-path>" so packages cannot shadow each other.
type ViewRegistry struct {
	dirs map[string]string // namespace -> directory
}

// NewViewRegistry creates an empty registry.
func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{dirs: make(map[string]string)}
}

// AddDir registers a package's view directory under its namespace (the slug).
func (r *ViewRegistry) AddDir(namespace, dir string) {
	r.dirs[namespace] = dir
}

// Namespaces returns the registered namespaces, sorted.
func (r *ViewRegistry) Namespaces() []string {
	out := make([]string, 0, len(r.dirs))
	for ns := range r.dirs {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Build parses every registered directory into one template set. Directories
// registered but missing on disk are skipped.
func (r *ViewRegistry) Build() (*template.Template, error) {
	root := template.New("")

	for _, ns := range r.Namespaces() {
		dir := r.dirs[ns]
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(dir), viewPattern)
		if err != nil {
			return nil, fmt.Errorf("globbing views in %s: %w", dir, err)
		}

		for _, rel := range matches {
			if info, err := fs.Stat(os.DirFS(dir), rel); err != nil || info.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				return nil, fmt.Errorf("reading view %s: %w", rel, err)
			}
			name := ns + "::" + rel
			if _, err := root.New(name).Parse(string(data)); err != nil {
				return nil, fmt.Errorf("parsing view %s: %w", name, err)
			}
		}
	}

	return root, nil
}
