package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestParseEnvOverrides(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	is.NoErr(os.Setenv("DUGOUT_DATA_PATH", td))
	is.NoErr(os.Setenv("DUGOUT_HTTP_PUBLIC_URL", "https://dugout.example.com/"))
	is.NoErr(os.Setenv("DUGOUT_AUTH_ANONYMOUS_TTL", "24h"))
	is.NoErr(os.Setenv("DUGOUT_CACHE_TEAMS", "42"))
	t.Cleanup(func() {
		is.NoErr(os.Unsetenv("DUGOUT_DATA_PATH"))
		is.NoErr(os.Unsetenv("DUGOUT_HTTP_PUBLIC_URL"))
		is.NoErr(os.Unsetenv("DUGOUT_AUTH_ANONYMOUS_TTL"))
		is.NoErr(os.Unsetenv("DUGOUT_CACHE_TEAMS"))
	})
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.DataPath, td)
	is.Equal(cfg.HTTP.PublicURL, "https://dugout.example.com")
	is.Equal(cfg.Auth.AnonymousTTL, 24*time.Hour)
	is.Equal(cfg.Cache.Teams, 42)
	is.Equal(cfg.DB.DataSource, filepath.Join(td, "dugout.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"))
}

func TestWriteAndParseConfig(t *testing.T) {
	is := is.New(t)
	cfg := &Config{
		Name:     "Sunday League",
		Locale:   "en-US",
		DataPath: t.TempDir(),
		DB:       DBConfig{Driver: "sqlite", DataSource: "test.db"},
		Auth:     AuthConfig{AnonymousTTL: time.Hour},
		Jobs:     JobsConfig{BootstrapRepair: "@every 5m"},
	}
	is.NoErr(cfg.WriteConfig())
	is.True(cfg.Exist())

	parsed := &Config{DataPath: cfg.DataPath}
	is.NoErr(parsed.ParseFile())
	is.Equal(parsed.Name, "Sunday League")
	is.Equal(parsed.Locale, "en-US")
	is.Equal(parsed.Auth.AnonymousTTL, time.Hour)
	is.Equal(parsed.Jobs.BootstrapRepair, "@every 5m")
	is.Equal(parsed.DB.DataSource, filepath.Join(cfg.DataPath, "test.db"))
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.DB.Driver = "mongodb"
	is.True(cfg.Validate() != nil)
}

func TestValidateRejectsBadLocale(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Locale = "not a locale!"
	is.True(cfg.Validate() != nil)
}

func TestCollation(t *testing.T) {
	is := is.New(t)
	var nilCfg *Config
	is.Equal(nilCfg.Collation().String(), "ja")
	cfg := DefaultConfig()
	is.Equal(cfg.Collation().String(), "ja-JP")
	cfg.Locale = "en"
	is.Equal(cfg.Collation().String(), "en")
}

func TestEnviron(t *testing.T) {
	is := is.New(t)
	var nilCfg *Config
	is.Equal(len(nilCfg.Environ()), 1)
	envs := DefaultConfig().Environ()
	is.True(len(envs) > 1)
	is.Equal(envs[0], "DUGOUT_BIN_PATH=dugout")
}
