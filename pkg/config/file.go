package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# Dugout server configuration

# The name of the server.
name: "{{ .Name }}"

# Locale used to sort member names (BCP 47).
locale: "{{ .Locale }}"

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  #path: "{{ .Log.Path }}"

# The HTTP server configuration.
http:
  # The address on which the HTTP server will listen.
  listen_addr: "{{ .HTTP.ListenAddr }}"

  # The public URL of the HTTP server.
  public_url: "{{ .HTTP.PublicURL }}"

# The stats server configuration.
stats:
  # The address on which the stats server will listen.
  listen_addr: "{{ .Stats.ListenAddr }}"

# The database configuration.
db:
  # The database driver to use.
  # Valid values are "sqlite" and "postgres".
  driver: "{{ .DB.Driver }}"
  # The database data source name.
  # This is driver specific and can be a file path or connection string.
  data_source: "{{ .DB.DataSource }}"

# Identity token configuration.
auth:
  # HMAC secret used to verify identity tokens. Prefer setting
  # DUGOUT_AUTH_SECRET over writing it here.
  #secret: ""
  # Expected token issuer. Leave empty to accept any issuer.
  issuer: "{{ .Auth.Issuer }}"
  # Lifetime of anonymous identities issued by the server.
  anonymous_ttl: "{{ .Auth.AnonymousTTL }}"

# Background jobs.
jobs:
  # Cron spec of the team bootstrap repair job. Empty disables it.
  bootstrap_repair: "{{ .Jobs.BootstrapRepair }}"

# In-memory caches.
cache:
  # Number of teams kept in memory.
  teams: {{ .Cache.Teams }}
`))

func newConfigFile(cfg *Config) string {
	var b bytes.Buffer
	configFileTmpl.Execute(&b, cfg) // nolint: errcheck
	return b.String()
}
