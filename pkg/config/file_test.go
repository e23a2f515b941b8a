package config

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"
)

func TestNewConfigFile(t *testing.T) {
	is := is.New(t)
	for _, cfg := range []*Config{nil, DefaultConfig(), {}} {
		is.True(newConfigFile(cfg) != "")
	}
}

func TestNewConfigFileRoundTrip(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Locale = "en-US"
	cfg.Jobs.BootstrapRepair = "@every 15m"
	cfg.Auth.Secret = "do-not-write"

	s := newConfigFile(cfg)
	is.True(strings.Contains(s, `bootstrap_repair: "@every 15m"`))
	is.True(!strings.Contains(s, "do-not-write")) // secrets stay in the environment

	var got Config
	is.NoErr(yaml.Unmarshal([]byte(s), &got))
	is.Equal(got.Name, "Dugout")
	is.Equal(got.Locale, "en-US")
	is.Equal(got.Jobs.BootstrapRepair, "@every 15m")
	is.Equal(got.Cache.Teams, cfg.Cache.Teams)
	is.Equal(got.Auth.AnonymousTTL, cfg.Auth.AnonymousTTL)
	is.Equal(got.Auth.Secret, "")
}
