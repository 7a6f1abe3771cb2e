package pack

import (
	"github.com/tjventurini/service-provider/internal/detect"
)

// Autodetect inspects the package root and flags every resource found at its
// conventional path. Each check is independent; absent resources are skipped.
// Commands and services are code values and cannot be detected from disk.
func (p *Package) Autodetect() *Package {
	report := detect.Scan(p.root, p.Slug())

	if report.ConfigFile != "" {
		p.configFile = report.ConfigFile
		p.WithConfig()
	}
	if report.Migrations {
		p.WithMigrations()
	}
	if report.Views {
		p.WithViews()
	}
	if report.Translations {
		p.WithTranslations()
	}
	if report.GraphQLSchema {
		p.WithGraphQLSchema()
	}
	if report.WebRoutes {
		p.WithWebRoutes()
	}
	if report.APIRoutes {
		p.WithAPIRoutes()
	}
	return p
}
