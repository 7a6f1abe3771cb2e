package host

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tjventurini/service-provider/internal/logging"
	"github.com/tjventurini/service-provider/internal/middleware"
	"github.com/tjventurini/service-provider/internal/monitoring"
	"github.com/tjventurini/service-provider/pack"
)

// Mode selects how the host process runs. Console mode is where migrations
// and commands get wired; serve mode is the HTTP server.
type Mode string

// Run modes.
const (
	ModeServe   Mode = "serve"
	ModeConsole Mode = "console"
)

// RegisteredPackage is the host's record of one registered package.
type RegisteredPackage struct {
	InstanceID   string    `json:"instance_id"`
	Slug         string    `json:"slug"`
	Namespace    string    `json:"namespace"`
	Version      string    `json:"version,omitempty"`
	Resources    []string  `json:"resources"`
	RegisteredAt time.Time `json:"registered_at"`
}

// App is the host application providers register into.
type App struct {
	config  *Config
	mode    Mode
	logger  *logging.Logger
	metrics *monitoring.Metrics
	promReg *prometheus.Registry

	container    *Container
	store        *ConfigStore
	views        *ViewRegistry
	translations *TranslationRegistry
	migrations   *MigrationRegistry
	commands     *CommandRegistry
	publisher    *Publisher
	graphql      GraphQLPlugin

	engine   *gin.Engine
	web      *gin.RouterGroup
	api      *gin.RouterGroup
	handlers map[string]gin.HandlerFunc
	server   *http.Server

	mu       sync.RWMutex
	packages []RegisteredPackage
}

// AppOption configures an App at construction.
type AppOption func(*App)

// WithMode sets the run mode. The default is ModeServe.
func WithMode(mode Mode) AppOption {
	return func(a *App) { a.mode = mode }
}

// WithLogger overrides the logger built from config.
func WithLogger(logger *logging.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

// NewApp creates a host application. A nil config loads from environment.
func NewApp(cfg *Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = LoadOrDefault()
	}

	promReg := prometheus.NewRegistry()

	a := &App{
		config:       cfg,
		mode:         ModeServe,
		metrics:      monitoring.New(promReg),
		promReg:      promReg,
		container:    NewContainer(),
		store:        NewConfigStore(),
		views:        NewViewRegistry(),
		translations: NewTranslationRegistry(),
		migrations:   NewMigrationRegistry(),
		commands:     NewCommandRegistry("host"),
		publisher:    NewPublisher(),
		handlers:     make(map[string]gin.HandlerFunc),
	}
	a.container.OnResolve(a.metrics.RecordServiceResolution)

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			logger = logging.NewDefault()
		}
		a.logger = logger
	}

	a.buildRouter()
	return a
}

func (a *App) buildRouter() {
	if !a.config.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(monitoring.Middleware(a.metrics))
	engine.Use(middleware.CORS(nil))
	if a.config.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: a.config.RateLimit.RequestsPerSecond,
			Burst:             a.config.RateLimit.Burst,
		}))
	}

	engine.GET("/health", a.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.promReg, promhttp.HandlerOpts{})))
	engine.GET("/packages", a.handleListPackages)

	a.engine = engine
	a.web = engine.Group("/")
	a.api = engine.Group("/api")
}

// Container returns the service container.
func (a *App) Container() *Container { return a.container }

// ConfigStore returns the merged configuration tree.
func (a *App) ConfigStore() *ConfigStore { return a.store }

// Views returns the view registry.
func (a *App) Views() *ViewRegistry { return a.views }

// Translations returns the translation registry.
func (a *App) Translations() *TranslationRegistry { return a.translations }

// Migrations returns the migration registry.
func (a *App) Migrations() *MigrationRegistry { return a.migrations }

// Commands returns the CLI command registry.
func (a *App) Commands() *CommandRegistry { return a.commands }

// Publisher returns the publishes manifest.
func (a *App) Publisher() *Publisher { return a.publisher }

// Features returns the host's feature flags.
func (a *App) Features() Features { return a.config.Features }

// PublishDir returns the base directory published resources land in.
func (a *App) PublishDir() string { return a.config.Publish.Dir }

// Logger returns the host logger.
func (a *App) Logger() *logging.Logger { return a.logger }

// Metrics returns the metrics collector.
func (a *App) Metrics() *monitoring.Metrics { return a.metrics }

// Engine exposes the gin engine for tests and embedding hosts.
func (a *App) Engine() *gin.Engine { return a.engine }

// UseGraphQL installs a GraphQL plugin. Without one, GraphQL returns nil and
// providers skip schema and namespace registration.
func (a *App) UseGraphQL(plugin GraphQLPlugin) {
	a.graphql = plugin
}

// GraphQL returns the installed GraphQL plugin, or nil.
func (a *App) GraphQL() GraphQLPlugin { return a.graphql }

// RunningInConsole reports whether the process runs as a CLI.
func (a *App) RunningInConsole() bool { return a.mode == ModeConsole }

// RecordPackage notes a completed package registration for introspection.
func (a *App) RecordPackage(p *pack.Package) RegisteredPackage {
	reg := RegisteredPackage{
		InstanceID:   uuid.NewString(),
		Slug:         p.Slug(),
		Namespace:    p.Namespace(),
		Version:      p.Version(),
		Resources:    resourceSummary(p),
		RegisteredAt: time.Now().UTC(),
	}

	a.mu.Lock()
	a.packages = append(a.packages, reg)
	a.mu.Unlock()

	a.metrics.PackagesRegistered.Set(float64(len(a.Packages())))
	a.logger.Info("Package registered",
		zap.String("slug", reg.Slug),
		zap.Strings("resources", reg.Resources),
	)
	return reg
}

// Packages returns all registered package records.
func (a *App) Packages() []RegisteredPackage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]RegisteredPackage(nil), a.packages...)
}

func resourceSummary(p *pack.Package) []string {
	var out []string
	if p.HasConfig() {
		out = append(out, "config")
	}
	if p.HasMigrations() {
		out = append(out, "migrations")
	}
	if p.HasViews() {
		out = append(out, "views")
	}
	if p.HasTranslations() {
		out = append(out, "translations")
	}
	if p.HasGraphQLSchema() {
		out = append(out, "graphql")
	}
	if p.HasWebRoutes() || p.HasAPIRoutes() || len(p.RouteFiles()) > 0 {
		out = append(out, "routes")
	}
	if len(p.Commands()) > 0 {
		out = append(out, "commands")
	}
	if len(p.Services()) > 0 {
		out = append(out, "services")
	}
	sort.Strings(out)
	return out
}

func (a *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"mode":     string(a.mode),
		"packages": len(a.Packages()),
		"uptime":   a.metrics.Uptime().String(),
	})
}

func (a *App) handleListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": a.Packages()})
}
