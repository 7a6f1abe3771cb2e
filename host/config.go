package host

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all host application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Features  Features
	Publish   PublishConfig
}

// PublishConfig holds where published package resources land.
type PublishConfig struct {
	Dir string `envconfig:"PUBLISH_DIR" default:"publish"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Features gates each resource kind a provider may wire. All default on;
// a host can switch a kind off without touching any package.
type Features struct {
	Config       bool `envconfig:"FEATURE_CONFIG" default:"true"`
	Services     bool `envconfig:"FEATURE_SERVICES" default:"true"`
	Migrations   bool `envconfig:"FEATURE_MIGRATIONS" default:"true"`
	Views        bool `envconfig:"FEATURE_VIEWS" default:"true"`
	Translations bool `envconfig:"FEATURE_TRANSLATIONS" default:"true"`
	Commands     bool `envconfig:"FEATURE_COMMANDS" default:"true"`
	GraphQL      bool `envconfig:"FEATURE_GRAPHQL" default:"true"`
	Routes       bool `envconfig:"FEATURE_ROUTES" default:"true"`
	Publishing   bool `envconfig:"FEATURE_PUBLISHING" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns the all-enabled default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8000", Host: "0.0.0.0"},
		Logging:   LogConfig{Level: "info", Development: false},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
		Features: Features{
			Config:       true,
			Services:     true,
			Migrations:   true,
			Views:        true,
			Translations: true,
			Commands:     true,
			GraphQL:      true,
			Routes:       true,
			Publishing:   true,
		},
		Publish: PublishConfig{Dir: "publish"},
	}
}
