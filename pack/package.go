package pack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/tjventurini/service-provider/internal/detect"
	"github.com/tjventurini/service-provider/internal/slug"
)

// ErrRouteFileNotFound reports a route file registered without existing on disk.
var ErrRouteFileNotFound = errors.New("route file not found")

// ServiceFunc constructs a container service. The config payload is the one
// given at registration, nil when none was provided.
type ServiceFunc func(config map[string]interface{}) (interface{}, error)

// ServiceRegistration binds a service name to its factory and optional config.
type ServiceRegistration struct {
	Name    string
	Factory ServiceFunc
	Config  map[string]interface{}
}

// NamespaceKind identifies where a GraphQL namespace applies.
type NamespaceKind string

// GraphQL namespace kinds.
const (
	NamespaceQueries       NamespaceKind = "queries"
	NamespaceMutations     NamespaceKind = "mutations"
	NamespaceSubscriptions NamespaceKind = "subscriptions"
	NamespaceTypes         NamespaceKind = "types"
	NamespaceInterfaces    NamespaceKind = "interfaces"
	NamespaceUnions        NamespaceKind = "unions"
	NamespaceScalars       NamespaceKind = "scalars"
	NamespaceDirectives    NamespaceKind = "directives"
)

// Package describes the optional resources one plugin package ships.
//
// Flags are monotonic: builders only ever set them, nothing resets one. The
// slug is immutable once derived or set. Not safe for concurrent mutation;
// a Package belongs to exactly one provider.
type Package struct {
	root      string
	namespace string
	slug      string
	version   *semver.Version

	configFile string // resolved config path, set by detection or WithConfig

	config        bool
	migrations    bool
	views         bool
	translations  bool
	graphqlSchema bool
	webRoutes     bool
	apiRoutes     bool

	commands   []*cobra.Command
	services   []ServiceRegistration
	namespaces map[NamespaceKind]string
	routeFiles []string
}

// Option configures a Package at construction.
type Option func(*Package)

// WithRoot overrides the package root directory.
func WithRoot(dir string) Option {
	return func(p *Package) { p.root = dir }
}

// New creates a descriptor for the given namespace. The package root defaults
// to the directory of the caller's source file, so a provider constructed
// inside a plugin package finds its own resources without configuration.
func New(namespace string, opts ...Option) *Package {
	p := &Package{namespace: namespace}

	if _, file, _, ok := runtime.Caller(1); ok {
		p.root = filepath.Dir(file)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Slug returns the package slug, deriving it from the namespace on first use.
func (p *Package) Slug() string {
	if p.slug == "" {
		p.slug = slug.Derive(p.namespace)
	}
	return p.slug
}

// WithSlug sets the slug explicitly. Once a slug has been derived or set it
// is immutable; later calls are ignored.
func (p *Package) WithSlug(s string) *Package {
	if p.slug == "" {
		p.slug = slug.Kebab(s)
	}
	return p
}

// Root returns the package root directory.
func (p *Package) Root() string { return p.root }

// Namespace returns the namespace the slug derives from.
func (p *Package) Namespace() string { return p.namespace }

// SetVersion records the package version. The value must parse as semver.
func (p *Package) SetVersion(v string) error {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid package version %q: %w", v, err)
	}
	p.version = parsed
	return nil
}

// Version returns the recorded version, or "" when none was set.
func (p *Package) Version() string {
	if p.version == nil {
		return ""
	}
	return p.version.String()
}

// WithConfig flags the package as shipping a config file at the conventional
// path. The resolved file defaults to config/<slug>.yaml.
func (p *Package) WithConfig() *Package {
	p.config = true
	if p.configFile == "" {
		p.configFile = filepath.Join(p.root, detect.ConfigDir, p.Slug()+".yaml")
	}
	return p
}

// WithMigrations flags the package as shipping migrations.
func (p *Package) WithMigrations() *Package {
	p.migrations = true
	return p
}

// WithViews flags the package as shipping view templates.
func (p *Package) WithViews() *Package {
	p.views = true
	return p
}

// WithTranslations flags the package as shipping translation catalogs.
func (p *Package) WithTranslations() *Package {
	p.translations = true
	return p
}

// WithGraphQLSchema flags the package as shipping a GraphQL schema file.
func (p *Package) WithGraphQLSchema() *Package {
	p.graphqlSchema = true
	return p
}

// WithWebRoutes flags the package as shipping a web route manifest.
func (p *Package) WithWebRoutes() *Package {
	p.webRoutes = true
	return p
}

// WithAPIRoutes flags the package as shipping an API route manifest.
func (p *Package) WithAPIRoutes() *Package {
	p.apiRoutes = true
	return p
}

// WithCommands appends CLI commands the host should expose in console mode.
func (p *Package) WithCommands(cmds ...*cobra.Command) *Package {
	p.commands = append(p.commands, cmds...)
	return p
}

// WithGraphQLNamespaces records resolver namespaces for the host's GraphQL
// plugin. Later calls add to (and may overwrite kinds of) earlier ones.
func (p *Package) WithGraphQLNamespaces(ns map[NamespaceKind]string) *Package {
	if p.namespaces == nil {
		p.namespaces = make(map[NamespaceKind]string, len(ns))
	}
	for kind, v := range ns {
		p.namespaces[kind] = v
	}
	return p
}

// RegisterService binds a named singleton service. The factory runs once on
// first resolution and receives the config payload, which may be nil.
func (p *Package) RegisterService(name string, factory ServiceFunc, config map[string]interface{}) *Package {
	p.services = append(p.services, ServiceRegistration{
		Name:    name,
		Factory: factory,
		Config:  config,
	})
	return p
}

// RegisterRouteFile adds a route manifest by path. The file must exist;
// a missing file fails with ErrRouteFileNotFound and leaves the list intact.
func (p *Package) RegisterRouteFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRouteFileNotFound, path)
	}
	p.routeFiles = append(p.routeFiles, path)
	return nil
}

// HasConfig reports whether the config flag is set.
func (p *Package) HasConfig() bool { return p.config }

// HasMigrations reports whether the migrations flag is set.
func (p *Package) HasMigrations() bool { return p.migrations }

// HasViews reports whether the views flag is set.
func (p *Package) HasViews() bool { return p.views }

// HasTranslations reports whether the translations flag is set.
func (p *Package) HasTranslations() bool { return p.translations }

// HasGraphQLSchema reports whether the GraphQL schema flag is set.
func (p *Package) HasGraphQLSchema() bool { return p.graphqlSchema }

// HasWebRoutes reports whether the web routes flag is set.
func (p *Package) HasWebRoutes() bool { return p.webRoutes }

// HasAPIRoutes reports whether the API routes flag is set.
func (p *Package) HasAPIRoutes() bool { return p.apiRoutes }

// Commands returns the registered CLI commands.
func (p *Package) Commands() []*cobra.Command { return p.commands }

// Services returns the service registrations in registration order.
func (p *Package) Services() []ServiceRegistration { return p.services }

// GraphQLNamespaces returns the recorded resolver namespaces.
func (p *Package) GraphQLNamespaces() map[NamespaceKind]string { return p.namespaces }

// RouteFiles returns explicitly registered route manifests in order.
func (p *Package) RouteFiles() []string { return p.routeFiles }
