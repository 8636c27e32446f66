package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thisguymartin/stylebook/internal/errors"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

// Config holds all runtime configuration for a stylebook invocation.
type Config struct {
	// Selection defaults
	DefaultStyle string `toml:"default_style"`
	DefaultView  string `toml:"default_view"`

	// Export
	BaseURL   string `toml:"base_url"`
	ExportDir string `toml:"export_dir"`

	Server ServerConfig `toml:"server"`
	Prefs  PrefsConfig  `toml:"prefs"`

	// Runtime only
	Verbose bool `toml:"-"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// PrefsConfig selects the preference store backend.
type PrefsConfig struct {
	Backend     string `toml:"backend"`
	Path        string `toml:"path"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		DefaultStyle: style.DefaultID,
		DefaultView:  string(preview.DefaultView),
		BaseURL:      "http://localhost:8080/",
		ExportDir:    ".",
		Server:       ServerConfig{Addr: ":8080"},
		Prefs:        PrefsConfig{Backend: "file"},
	}
}

// Environment variables that override file values.
const (
	EnvDefaultStyle = "STYLEBOOK_DEFAULT_STYLE"
	EnvDefaultView  = "STYLEBOOK_DEFAULT_VIEW"
	EnvAddr         = "STYLEBOOK_ADDR"
	EnvBaseURL      = "STYLEBOOK_BASE_URL"
	EnvPrefs        = "STYLEBOOK_PREFS"
	EnvRedisAddr    = "STYLEBOOK_REDIS_ADDR"
)

// DefaultPath returns $XDG_CONFIG_HOME/stylebook/config.toml, or "" when the
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "stylebook", "config.toml")
}

// Load builds a Config from defaults, the TOML file at path and the
// environment, in that order. A missing file is not an error when path is
// the default location. Unknown style and view names are normalized to their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && (explicit || !os.IsNotExist(err)) {
			return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
		}
	}

	applyEnv(&cfg, os.Getenv)
	cfg.normalize()
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.DefaultStyle, EnvDefaultStyle)
	set(&cfg.DefaultView, EnvDefaultView)
	set(&cfg.Server.Addr, EnvAddr)
	set(&cfg.BaseURL, EnvBaseURL)
	set(&cfg.Prefs.Backend, EnvPrefs)
	set(&cfg.Prefs.RedisAddr, EnvRedisAddr)
}

func (c *Config) normalize() {
	rec, _ := style.Resolve(c.DefaultStyle)
	c.DefaultStyle = rec.ID
	view, _ := preview.ParseView(c.DefaultView)
	c.DefaultView = string(view)
}

// View returns DefaultView as a preview.ViewMode.
func (c Config) View() preview.ViewMode {
	v, _ := preview.ParseView(c.DefaultView)
	return v
}

// String renders the effective configuration as TOML.
func (c Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
