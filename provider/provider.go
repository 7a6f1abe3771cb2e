package provider

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/tjventurini/service-provider/host"
	"github.com/tjventurini/service-provider/internal/logging"
	"github.com/tjventurini/service-provider/internal/monitoring"
	"github.com/tjventurini/service-provider/pack"
)

// Provider is the lifecycle contract the host drives for each package.
type Provider interface {
	Register(ctx context.Context) error
	Boot(ctx context.Context) error
}

// Host is the registration surface a provider drives during Register and
// Boot. *host.App implements it; a consumer can wrap App to intercept
// individual methods.
type Host interface {
	Features() host.Features
	ConfigStore() *host.ConfigStore
	Container() *host.Container
	GraphQL() host.GraphQLPlugin
	Views() *host.ViewRegistry
	Translations() *host.TranslationRegistry
	Migrations() *host.MigrationRegistry
	Commands() *host.CommandRegistry
	MountRouteFile(group host.RouteGroup, path string) error
	Publisher() *host.Publisher
	PublishDir() string
	Logger() *logging.Logger
	Metrics() *monitoring.Metrics
	RecordPackage(p *pack.Package) host.RegisteredPackage
	RunningInConsole() bool
}

var _ Host = (*host.App)(nil)

// ConfigureFunc prepares the package descriptor during Register. The default
// runs autodetection only.
type ConfigureFunc func(*pack.Package) error

// Hook runs around a lifecycle phase. A nil hook is skipped; a hook error
// aborts the phase.
type Hook func(ctx context.Context, p *pack.Package) error

// Hooks are the four extension points around the two phases.
type Hooks struct {
	BeforeRegister Hook
	AfterRegister  Hook
	BeforeBoot     Hook
	AfterBoot      Hook
}

// Simple wires one package descriptor into one host application.
type Simple struct {
	app       Host
	pkg       *pack.Package
	configure ConfigureFunc
	hooks     Hooks
}

// Option configures a Simple provider.
type Option func(*Simple)

// WithPackage supplies a pre-built descriptor, skipping construction from
// the namespace.
func WithPackage(p *pack.Package) Option {
	return func(s *Simple) { s.pkg = p }
}

// WithConfigure replaces the default autodetection configuration step.
func WithConfigure(fn ConfigureFunc) Option {
	return func(s *Simple) { s.configure = fn }
}

// WithHooks installs lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(s *Simple) { s.hooks = h }
}

// New creates a provider for the package identified by namespace. The package
// root defaults to the directory of the caller's source file.
func New(app Host, namespace string, opts ...Option) *Simple {
	s := &Simple{
		app:       app,
		configure: func(p *pack.Package) error { p.Autodetect(); return nil },
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.pkg == nil {
		root := ""
		if _, file, _, ok := runtime.Caller(1); ok {
			root = filepath.Dir(file)
		}
		s.pkg = pack.New(namespace, pack.WithRoot(root))
	}
	return s
}

// Package returns the descriptor this provider manages.
func (s *Simple) Package() *pack.Package { return s.pkg }

// Register runs the registration phase: configure the descriptor, merge
// config, bind services, contribute GraphQL schema and namespaces.
func (s *Simple) Register(ctx context.Context) error {
	if err := s.run(ctx, s.hooks.BeforeRegister); err != nil {
		return fmt.Errorf("before-register hook: %w", err)
	}

	if err := s.configure(s.pkg); err != nil {
		return fmt.Errorf("configuring package %s: %w", s.pkg.Slug(), err)
	}

	features := s.app.Features()

	if features.Config && s.pkg.HasConfig() {
		if err := s.app.ConfigStore().MergeFile(s.pkg.Slug(), s.pkg.ConfigFile()); err != nil {
			return fmt.Errorf("merging config for %s: %w", s.pkg.Slug(), err)
		}
		s.app.Metrics().RecordResource("config")
	}

	if features.Services {
		for _, svc := range s.pkg.Services() {
			if err := s.app.Container().Singleton(svc.Name, host.Factory(svc.Factory), svc.Config); err != nil {
				return fmt.Errorf("binding service %s: %w", svc.Name, err)
			}
			s.app.Metrics().RecordResource("service")
		}
	}

	if features.GraphQL {
		if err := s.registerGraphQL(); err != nil {
			return err
		}
	}

	s.app.RecordPackage(s.pkg)

	if err := s.run(ctx, s.hooks.AfterRegister); err != nil {
		return fmt.Errorf("after-register hook: %w", err)
	}
	return nil
}

// registerGraphQL contributes schema and namespaces, but only when the host
// actually carries a GraphQL plugin.
func (s *Simple) registerGraphQL() error {
	plugin := s.app.GraphQL()
	if plugin == nil {
		return nil
	}

	if s.pkg.HasGraphQLSchema() {
		if err := plugin.AddSchemaFile(s.pkg.GraphQLSchemaFile()); err != nil {
			return fmt.Errorf("registering graphql schema for %s: %w", s.pkg.Slug(), err)
		}
		s.app.Metrics().RecordResource("graphql_schema")
	}
	for kind, ns := range s.pkg.GraphQLNamespaces() {
		plugin.AddNamespace(kind, ns)
	}
	return nil
}

// Boot runs the boot phase: console-only wiring, views, translations,
// routes, and publishable resources.
func (s *Simple) Boot(ctx context.Context) error {
	if err := s.run(ctx, s.hooks.BeforeBoot); err != nil {
		return fmt.Errorf("before-boot hook: %w", err)
	}

	features := s.app.Features()

	if s.app.RunningInConsole() {
		if features.Migrations && s.pkg.HasMigrations() {
			s.app.Migrations().AddDir(s.pkg.MigrationsDir())
			s.app.Metrics().RecordResource("migrations")
		}
		if features.Commands && len(s.pkg.Commands()) > 0 {
			s.app.Commands().Add(s.pkg.Commands()...)
			s.app.Metrics().RecordResource("commands")
		}
	}

	if features.Views && s.pkg.HasViews() {
		s.app.Views().AddDir(s.pkg.Slug(), s.pkg.ViewsDir())
		s.app.Metrics().RecordResource("views")
	}

	if features.Translations && s.pkg.HasTranslations() {
		s.app.Translations().AddDir(s.pkg.Slug(), s.pkg.TranslationsDir())
		s.app.Metrics().RecordResource("translations")
	}

	if features.Routes {
		if err := s.mountRoutes(); err != nil {
			return err
		}
	}

	if features.Publishing {
		s.recordPublishables()
	}

	if err := s.run(ctx, s.hooks.AfterBoot); err != nil {
		return fmt.Errorf("after-boot hook: %w", err)
	}

	s.app.Logger().Debug("Package booted", zap.String("slug", s.pkg.Slug()))
	return nil
}

func (s *Simple) mountRoutes() error {
	if s.pkg.HasWebRoutes() {
		if err := s.app.MountRouteFile(host.GroupWeb, s.pkg.WebRoutesFile()); err != nil {
			return fmt.Errorf("mounting web routes for %s: %w", s.pkg.Slug(), err)
		}
		s.app.Metrics().RecordResource("web_routes")
	}
	if s.pkg.HasAPIRoutes() {
		if err := s.app.MountRouteFile(host.GroupAPI, s.pkg.APIRoutesFile()); err != nil {
			return fmt.Errorf("mounting api routes for %s: %w", s.pkg.Slug(), err)
		}
		s.app.Metrics().RecordResource("api_routes")
	}
	// Explicitly registered manifests mount on the web group.
	for _, file := range s.pkg.RouteFiles() {
		if err := s.app.MountRouteFile(host.GroupWeb, file); err != nil {
			return fmt.Errorf("mounting routes %s: %w", file, err)
		}
		s.app.Metrics().RecordResource("web_routes")
	}
	return nil
}

// recordPublishables registers the package's publishable resources with the
// host publisher under "<slug>-<kind>" tags.
func (s *Simple) recordPublishables() {
	slug := s.pkg.Slug()
	base := s.app.PublishDir()

	if s.pkg.HasConfig() {
		s.app.Publisher().Add(slug+"-config", s.pkg.ConfigFile(),
			filepath.Join(base, "config", filepath.Base(s.pkg.ConfigFile())))
	}
	if s.pkg.HasViews() {
		s.app.Publisher().Add(slug+"-views", s.pkg.ViewsDir(),
			filepath.Join(base, "views", "vendor", slug))
	}
	if s.pkg.HasTranslations() {
		s.app.Publisher().Add(slug+"-lang", s.pkg.TranslationsDir(),
			filepath.Join(base, "lang", "vendor", slug))
	}
}

func (s *Simple) run(ctx context.Context, hook Hook) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, s.pkg)
}

// RegisterAll runs the full lifecycle for a set of providers: every Register
// first, then every Boot, in order. This mirrors how a host bootstraps.
func RegisterAll(ctx context.Context, providers ...Provider) error {
	for _, p := range providers {
		if err := p.Register(ctx); err != nil {
			return err
		}
	}
	for _, p := range providers {
		if err := p.Boot(ctx); err != nil {
			return err
		}
	}
	return nil
}
