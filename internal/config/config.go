// Package config loads the atrium.yaml settings file.
//
// Settings are resolved from, in increasing precedence: built-in
// defaults, the config file, and ATRIUM_* environment variables
// (ATRIUM_SERVER_ADDR overrides server.addr).
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/atrium-ui/atrium/internal/errors"
)

// Settings holds everything configurable from atrium.yaml.
type Settings struct {
	Server struct {
		Addr      string // listen address, host:port
		StaticDir string // directory served under /static/
	}

	Live struct {
		Enabled  bool          // true to stream metric updates over WebSocket
		Interval time.Duration // poll interval for the live hub
	}

	Theme struct {
		Default string // light, dark or system
	}

	Publish struct {
		Bucket       string // S3 bucket for publish, empty to disable
		Prefix       string // key prefix inside the bucket
		CacheControl string // Cache-Control stored on uploaded objects
		OutDir       string // local output directory for preview builds
	}

	Log struct {
		Level  string // debug, info, warn or error
		Format string // text or json
	}
}

// Load reads settings from the given file, or from the default search
// paths when path is empty.
func Load(path string) (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("atrium")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("atrium")
		v.SetConfigType("yaml")
		for _, dir := range defaultConfigPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && stderrors.As(err, &notFound) {
			// No config file anywhere. Defaults and env still apply.
		} else {
			return nil, errors.New("A060").Wrap(err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.New("A060").Wrap(err).
			WithSuggestion("Check the value types in atrium.yaml")
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.staticdir", "static")
	v.SetDefault("live.enabled", true)
	v.SetDefault("live.interval", 5*time.Second)
	v.SetDefault("theme.default", "system")
	v.SetDefault("publish.prefix", "")
	v.SetDefault("publish.cachecontrol", "public, max-age=300")
	v.SetDefault("publish.outdir", "dist")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func validate(s *Settings) error {
	switch s.Theme.Default {
	case "light", "dark", "system":
	default:
		return errors.New("A061").WithDetail(fmt.Sprintf(
			"theme.default must be light, dark or system, got %q", s.Theme.Default))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("A061").WithDetail(fmt.Sprintf(
			"log.level must be debug, info, warn or error, got %q", s.Log.Level))
	}
	if s.Live.Interval <= 0 {
		return errors.New("A061").WithDetail(fmt.Sprintf(
			"live.interval must be positive, got %v", s.Live.Interval))
	}
	return nil
}

// SlogLevel maps the configured level to a slog.Level.
func (s *Settings) SlogLevel() slog.Level {
	switch s.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger from the configured level and format.
func (s *Settings) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.SlogLevel()}
	if s.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "atrium"))
	}
	return append(paths, "/etc/atrium")
}
