package host

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
)

// RouteGroup selects which gin group a manifest mounts onto.
type RouteGroup string

// Route groups.
const (
	GroupWeb RouteGroup = "web" // mounted at /
	GroupAPI RouteGroup = "api" // mounted at /api
)

// routeManifest is the YAML shape of a package route file.
type routeManifest struct {
	Routes []routeEntry `yaml:"routes"`
}

type routeEntry struct {
	Method  string `yaml:"method"`
	Path    string `yaml:"path"`
	Handler string `yaml:"handler"`
}

// Handle registers a named handler packages can reference from their route
// manifests. Names are conventionally "<slug>.<action>".
func (a *App) Handle(name string, handler gin.HandlerFunc) {
	a.handlers[name] = handler
}

// MountRouteFile parses a YAML route manifest and mounts its entries onto
// the group's gin router. Every referenced handler must already be named
// via Handle.
func (a *App) MountRouteFile(group RouteGroup, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading route manifest %s: %w", path, err)
	}

	var manifest routeManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing route manifest %s: %w", path, err)
	}

	router := a.groupRouter(group)
	for _, entry := range manifest.Routes {
		handler, ok := a.handlers[entry.Handler]
		if !ok {
			return fmt.Errorf("route manifest %s: unknown handler %q", path, entry.Handler)
		}

		method := strings.ToUpper(entry.Method)
		switch method {
		case http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions:
			router.Handle(method, entry.Path, handler)
		default:
			return fmt.Errorf("route manifest %s: unsupported method %q", path, entry.Method)
		}
	}

	return nil
}

func (a *App) groupRouter(group RouteGroup) gin.IRoutes {
	if group == GroupAPI {
		return a.api
	}
	return a.web
}
