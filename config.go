package atrium

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atrium-ui/atrium/pkg/boundary"
	"github.com/atrium-ui/atrium/pkg/flags"
	"github.com/atrium-ui/atrium/pkg/metric"
	"github.com/atrium-ui/atrium/pkg/theme"
)

// Config is the main application configuration.
type Config struct {
	// Static configures static file serving.
	Static StaticConfig

	// Live configures the WebSocket metric stream.
	Live LiveConfig

	// Theme is the default theme for new visitors.
	// Defaults to theme.System.
	Theme theme.Theme

	// Flags is the feature-flag store handed to pages.
	// If nil, an empty store is created.
	Flags *flags.Store

	// Reporter receives errors captured by page boundaries.
	// If nil, captures are logged through Logger.
	Reporter boundary.Reporter

	// DevMode enables pretty-printed HTML and permissive WebSocket
	// origins. Never use in production.
	DevMode bool

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// StaticConfig configures static file serving.
type StaticConfig struct {
	// Dir is the directory containing static files. Empty disables
	// static serving.
	Dir string

	// Prefix is the URL path prefix. Default: "/static".
	Prefix string
}

// LiveConfig configures the WebSocket metric stream.
type LiveConfig struct {
	// Enabled mounts the /live endpoint.
	Enabled bool

	// Source is polled for metric snapshots. Required when Enabled.
	Source metric.Source

	// Interval between polls. Default: 5s.
	Interval time.Duration

	// Path is the WebSocket endpoint. Default: "/live".
	Path string
}

func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Theme == "" {
		c.Theme = theme.System
	}
	if c.Flags == nil {
		c.Flags = flags.New()
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static"
	}
	if c.Live.Interval <= 0 {
		c.Live.Interval = 5 * time.Second
	}
	if c.Live.Path == "" {
		c.Live.Path = "/live"
	}
}

// devCheckOrigin allows all origins in dev mode; nil keeps the
// same-origin default.
func (c *Config) devCheckOrigin() func(*http.Request) bool {
	if c.DevMode {
		return func(*http.Request) bool { return true }
	}
	return nil
}
