package pack

import (
	"path/filepath"

	"github.com/tjventurini/service-provider/internal/detect"
)

// ConfigFile returns the package's config file path. When autodetection
// resolved a concrete file that exact path is returned; otherwise the
// conventional config/<slug>.yaml under the root.
func (p *Package) ConfigFile() string {
	if p.configFile != "" {
		return p.configFile
	}
	return filepath.Join(p.root, detect.ConfigDir, p.Slug()+".yaml")
}

// MigrationsDir returns the conventional migrations directory.
func (p *Package) MigrationsDir() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.MigrationsDir))
}

// ViewsDir returns the conventional views directory.
func (p *Package) ViewsDir() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.ViewsDir))
}

// TranslationsDir returns the conventional translations directory.
func (p *Package) TranslationsDir() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.TranslationsDir))
}

// GraphQLSchemaFile returns the conventional schema file path.
func (p *Package) GraphQLSchemaFile() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.GraphQLSchema))
}

// WebRoutesFile returns the conventional web route manifest path.
func (p *Package) WebRoutesFile() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.WebRoutesFile))
}

// APIRoutesFile returns the conventional API route manifest path.
func (p *Package) APIRoutesFile() string {
	return filepath.Join(p.root, filepath.FromSlash(detect.APIRoutesFile))
}
