package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tripplan configuration
type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint" yaml:"endpoint"`
	Client   ClientConfig   `mapstructure:"client" yaml:"client"`
	TUI      TUIConfig      `mapstructure:"tui" yaml:"tui"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

// EndpointConfig controls where the last-used service endpoint is remembered
type EndpointConfig struct {
	// Backend selects the endpoint store: "file", "redis" or "memory" (default: "file")
	Backend string `mapstructure:"backend" yaml:"backend"`
	// StateFile is the YAML file used by the file backend.
	// Empty means state.yaml in the config directory.
	StateFile string `mapstructure:"state_file" yaml:"state_file"`
	// Redis configures the redis backend
	Redis RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig holds connection settings for the redis endpoint store
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
	DB       int    `mapstructure:"db" yaml:"db"`
	// Prefix is prepended to the stored key (default: "tripplan:")
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
}

// ClientConfig controls the planning service HTTP client
type ClientConfig struct {
	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// TimeoutSeconds bounds a single request; 0 keeps the platform default (no timeout)
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// TUIConfig controls the interactive form
type TUIConfig struct {
	// ShowBreakdown renders the per-category price breakdown under the summary cards
	ShowBreakdown bool `mapstructure:"show_breakdown" yaml:"show_breakdown"`
	// ResultWidth is the width of the result panel in columns (default: 72, min: 40, max: 200)
	ResultWidth int `mapstructure:"result_width" yaml:"result_width"`
}

// OutputConfig controls the non-interactive plan command
type OutputConfig struct {
	// Format is the default output of `tripplan plan`
	// Options: "text", "markdown", "json", "yaml"
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logs are written at all (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn" or "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the size at which the log file is rotated (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// MetricsConfig controls the optional Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables the listener
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			Backend:   "file",
			StateFile: "",
			Redis: RedisConfig{
				Addr:   "127.0.0.1:6379",
				DB:     0,
				Prefix: "tripplan:",
			},
		},
		Client: ClientConfig{
			UserAgent:      "tripplan",
			TimeoutSeconds: 0,
		},
		TUI: TUIConfig{
			ShowBreakdown: true,
			ResultWidth:   72,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}

// Timeout returns the request timeout as a time.Duration (0 means no timeout)
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveStateFile returns the file backing the file endpoint store.
func (e *EndpointConfig) ResolveStateFile() string {
	if e.StateFile == "" {
		return StateFile()
	}
	return e.StateFile
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Endpoint store defaults
	viper.SetDefault("endpoint.backend", defaults.Endpoint.Backend)
	viper.SetDefault("endpoint.state_file", defaults.Endpoint.StateFile)
	viper.SetDefault("endpoint.redis.addr", defaults.Endpoint.Redis.Addr)
	viper.SetDefault("endpoint.redis.password", defaults.Endpoint.Redis.Password)
	viper.SetDefault("endpoint.redis.db", defaults.Endpoint.Redis.DB)
	viper.SetDefault("endpoint.redis.prefix", defaults.Endpoint.Redis.Prefix)

	// Client defaults
	viper.SetDefault("client.user_agent", defaults.Client.UserAgent)
	viper.SetDefault("client.timeout_seconds", defaults.Client.TimeoutSeconds)

	// TUI defaults
	viper.SetDefault("tui.show_breakdown", defaults.TUI.ShowBreakdown)
	viper.SetDefault("tui.result_width", defaults.TUI.ResultWidth)

	// Output defaults
	viper.SetDefault("output.format", defaults.Output.Format)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Metrics defaults
	viper.SetDefault("metrics.addr", defaults.Metrics.Addr)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripplan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tripplan"
	}
	return filepath.Join(home, ".config", "tripplan")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateFile returns the default path of the file endpoint store
func StateFile() string {
	return filepath.Join(ConfigDir(), "state.yaml")
}

// LogDir returns the directory debug logs are written to
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}

// ValidBackends returns the list of valid endpoint store backends
func ValidBackends() []string {
	return []string{"file", "redis", "memory"}
}

// ValidOutputFormats returns the list of valid plan output formats
func ValidOutputFormats() []string {
	return []string{"text", "markdown", "json", "yaml"}
}
