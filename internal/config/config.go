// Package config handles runtime configuration for the web server,
// layering defaults, environment variables and command-line flags.
package config

import (
	"flag"
	"os"
	"strings"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP listener.
//   - DatabasePath: filesystem path of the SQLite database file.
//   - TemplatesDir: directory containing the HTML templates.
//   - StaticDir: directory served under /static/.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	ListenAddr   string
	DatabasePath string
	TemplatesDir string
	StaticDir    string
	LogLevel     string
}

// loadDefaults populates Config with development defaults.
func (c *Config) loadDefaults() {
	c.ListenAddr = "127.0.0.1:8000"
	c.DatabasePath = "database/users.db"
	c.TemplatesDir = "./web/templates"
	c.StaticDir = "./web/static"
	c.LogLevel = "info"
}

// loadEnv overlays values from environment variables. DATABASE_URL may
// carry a `sqlite:` scheme prefix; it is stripped so the value can be
// used directly as a file path.
func (c *Config) loadEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabasePath = strings.TrimPrefix(v, "sqlite:")
	}
	if v := os.Getenv("TEMPLATES_DIR"); v != "" {
		c.TemplatesDir = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// ParseFlags overlays command-line flags on top of the current values.
// The current values double as flag defaults, so flags win over both
// the environment and the built-in defaults.
func (c *Config) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&c.ListenAddr, "addr", c.ListenAddr, "http listen address")
	fs.StringVar(&c.DatabasePath, "db", c.DatabasePath, "path to the sqlite database file")
	fs.StringVar(&c.TemplatesDir, "templates", c.TemplatesDir, "templates directory")
	fs.StringVar(&c.StaticDir, "static", c.StaticDir, "static assets directory")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "minimum log level")
	return fs.Parse(args)
}

// Load builds a Config by applying defaults and then overlaying values
// from the environment. Call ParseFlags afterwards to apply flags.
func Load() *Config {
	cfg := &Config{}
	cfg.loadDefaults()
	cfg.loadEnv()
	return cfg
}
