package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var binPath = "dugout"

// ErrNilConfig is returned when a nil config is passed to a function.
var ErrNilConfig = errors.New("nil config")

// HTTPConfig is the HTTP configuration for the API server.
type HTTPConfig struct {
	// ListenAddr is the address on which the HTTP server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// PublicURL is the public URL of the HTTP server.
	PublicURL string `env:"PUBLIC_URL" yaml:"public_url"`
}

// StatsConfig is the configuration for the stats server.
type StatsConfig struct {
	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// AuthConfig configures how identity tokens handed over by the identity
// provider are verified.
type AuthConfig struct {
	// Secret is the HMAC secret shared with the identity provider.
	Secret string `env:"SECRET" yaml:"secret"`

	// Issuer is the expected token issuer. Empty disables the check.
	Issuer string `env:"ISSUER" yaml:"issuer"`

	// AnonymousTTL is how long anonymous identities issued by the server
	// stay valid.
	AnonymousTTL time.Duration `env:"ANONYMOUS_TTL" yaml:"anonymous_ttl"`
}

// JobsConfig is the configuration for cron jobs.
type JobsConfig struct {
	// BootstrapRepair is the cron spec of the team bootstrap repair job.
	// An empty spec disables the job.
	BootstrapRepair string `env:"BOOTSTRAP_REPAIR" yaml:"bootstrap_repair"`
}

// CacheConfig is the configuration for in-memory caches.
type CacheConfig struct {
	// Teams is the number of team records kept in memory.
	Teams int `env:"TEAMS" yaml:"teams"`
}

// Config is the configuration for dugout.
type Config struct {
	// Name is the name of the server.
	Name string `env:"NAME" yaml:"name"`

	// Locale is the BCP 47 tag used to collate member names.
	Locale string `env:"LOCALE" yaml:"locale"`

	// HTTP is the configuration for the HTTP server.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`

	// Stats is the configuration for the stats server.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Auth is the identity token configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// Jobs is the configuration for cron jobs.
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// Cache is the configuration for in-memory caches.
	Cache CacheConfig `envPrefix:"CACHE_" yaml:"cache"`

	// DataPath is the path to the directory where dugout will store its data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{
		fmt.Sprintf("DUGOUT_BIN_PATH=%s", binPath),
	}
	if c == nil {
		return envs
	}

	// TODO: do this dynamically
	envs = append(envs, []string{
		fmt.Sprintf("DUGOUT_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("DUGOUT_NAME=%s", c.Name),
		fmt.Sprintf("DUGOUT_LOCALE=%s", c.Locale),
		fmt.Sprintf("DUGOUT_HTTP_LISTEN_ADDR=%s", c.HTTP.ListenAddr),
		fmt.Sprintf("DUGOUT_HTTP_PUBLIC_URL=%s", c.HTTP.PublicURL),
		fmt.Sprintf("DUGOUT_STATS_LISTEN_ADDR=%s", c.Stats.ListenAddr),
		fmt.Sprintf("DUGOUT_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("DUGOUT_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("DUGOUT_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("DUGOUT_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("DUGOUT_AUTH_ISSUER=%s", c.Auth.Issuer),
		fmt.Sprintf("DUGOUT_AUTH_ANONYMOUS_TTL=%s", c.Auth.AnonymousTTL),
		fmt.Sprintf("DUGOUT_JOBS_BOOTSTRAP_REPAIR=%s", c.Jobs.BootstrapRepair),
		fmt.Sprintf("DUGOUT_CACHE_TEAMS=%d", c.Cache.Teams),
	}...)

	return envs
}

// IsDebug returns true if the server is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("DUGOUT_DEBUG"))
	return debug
}

// IsVerbose returns true if the server is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("DUGOUT_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "DUGOUT_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment variables.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o600) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the DUGOUT_DATA_PATH environment variable if set, otherwise it
// uses "data".
func DefaultDataPath() string {
	dp := os.Getenv("DUGOUT_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(c.ConfigPath())
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Name:     "Dugout",
		Locale:   "ja-JP",
		DataPath: DefaultDataPath(),
		HTTP: HTTPConfig{
			ListenAddr: ":8080",
			PublicURL:  "http://localhost:8080",
		},
		Stats: StatsConfig{
			ListenAddr: "localhost:8081",
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		DB: DBConfig{
			Driver: "sqlite",
			DataSource: "dugout.db" +
				"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Auth: AuthConfig{
			AnonymousTTL: 365 * 24 * time.Hour,
		},
		Jobs: JobsConfig{
			BootstrapRepair: "@every 1h",
		},
		Cache: CacheConfig{
			Teams: 1000,
		},
	}
}

// Validate validates the configuration.
// It updates the configuration with absolute paths.
func (c *Config) Validate() error {
	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	c.HTTP.PublicURL = strings.TrimSuffix(c.HTTP.PublicURL, "/")

	switch c.DB.Driver {
	case "sqlite", "sqlite3":
		if !filepath.IsAbs(c.DB.DataSource) {
			c.DB.DataSource = filepath.Join(c.DataPath, c.DB.DataSource)
		}
	case "postgres", "":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.DB.Driver)
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
	}

	return nil
}

// Collation returns the language tag used to sort member names.
func (c *Config) Collation() language.Tag {
	if c == nil || c.Locale == "" {
		return language.Japanese
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Japanese
	}
	return tag
}
