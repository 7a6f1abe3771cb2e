package detect

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Entry describes one resource file found under a package root.
type Entry struct {
	Kind string // "config", "migration", "view", "translation", "schema", "routes"
	Path string // relative to the package root
}

// kindPatterns maps resource kinds to glob patterns relative to the root.
var kindPatterns = map[string]string{
	"config":      ConfigDir + "/*.{yaml,toml}",
	"migration":   MigrationsDir + "/*.sql",
	"view":        ViewsDir + "/**/*.{tmpl,html}",
	"translation": TranslationsDir + "/*.yaml",
	"schema":      "graphql/*.graphql",
	"routes":      "routes/*.yaml",
}

// Inventory walks root and returns every shipped resource file, sorted by
// kind then path. Used by the inspect command and the publisher; detection
// itself never needs the full listing.
func Inventory(root string) ([]Entry, error) {
	var entries []Entry

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for kind, pattern := range kindPatterns {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return err
			}
			if ok {
				entries = append(entries, Entry{Kind: kind, Path: rel})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
