// Package detect implements filesystem autodetection of package resources.
//
// A package's optional resources live at fixed conventional paths relative to
// its root. Detection is a sequence of independent existence checks; no file
// content is ever read here.
package detect

import (
	"os"
	"path/filepath"
)

// Conventional subpaths relative to the package root.
const (
	ConfigDir       = "config"
	MigrationsDir   = "database/migrations"
	ViewsDir        = "resources/views"
	TranslationsDir = "resources/lang"
	GraphQLSchema   = "graphql/schema.graphql"
	WebRoutesFile   = "routes/web.yaml"
	APIRoutesFile   = "routes/api.yaml"
)

// Config file extensions checked in order.
var configExts = []string{".yaml", ".toml"}

// Report holds the outcome of a detection pass over one package root.
type Report struct {
	ConfigFile    string // empty when no config file is present
	Migrations    bool
	Views         bool
	Translations  bool
	GraphQLSchema bool
	WebRoutes     bool
	APIRoutes     bool
}

// Scan checks each conventional path under root. Absent resources are
// skipped silently; Scan cannot fail.
func Scan(root, slug string) Report {
	return Report{
		ConfigFile:    ConfigFile(root, slug),
		Migrations:    dirExists(filepath.Join(root, MigrationsDir)),
		Views:         dirExists(filepath.Join(root, ViewsDir)),
		Translations:  dirExists(filepath.Join(root, TranslationsDir)),
		GraphQLSchema: fileExists(filepath.Join(root, GraphQLSchema)),
		WebRoutes:     fileExists(filepath.Join(root, WebRoutesFile)),
		APIRoutes:     fileExists(filepath.Join(root, APIRoutesFile)),
	}
}

// ConfigFile returns the path of the package's config file, or "" when the
// package ships none. YAML wins over TOML when both exist.
func ConfigFile(root, slug string) string {
	if slug == "" {
		return ""
	}
	for _, ext := range configExts {
		p := filepath.Join(root, ConfigDir, slug+ext)
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
