package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_THEME_DEFAULT.
const EnvPrefix = "FOLIO"

const appName = "folio"

// DefaultConfigPath returns where the config file is looked up when no path
// is given: $XDG_CONFIG_HOME/folio/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultLogPath returns the log file under the XDG state directory,
// creating its parent directory.
func DefaultLogPath() (string, error) {
	path, err := xdg.StateFile(appName + "/folio.log")
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// Load builds the configuration. Values are layered, later wins: defaults,
// the config file, .env in the working directory, then FOLIO_ variables.
// An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		if found, err := xdg.SearchConfigFile(appName + "/config.yaml"); err == nil {
			path = found
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Theme.Default = strings.ToLower(strings.TrimSpace(cfg.Theme.Default))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// file does not mention.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme.default", cfg.Theme.Default)
	v.SetDefault("loading.dismiss_delay", cfg.Loading.DismissDelay)
	v.SetDefault("layout.mobile_breakpoint", cfg.Layout.MobileBreakpoint)
	v.SetDefault("layout.scroll_threshold", cfg.Layout.ScrollThreshold)
	v.SetDefault("clock.timezone", cfg.Clock.Timezone)
	v.SetDefault("clock.interval", cfg.Clock.Interval)
	v.SetDefault("motion.fps", cfg.Motion.FPS)
	v.SetDefault("motion.cursor.stiffness", cfg.Motion.Cursor.Stiffness)
	v.SetDefault("motion.cursor.damping", cfg.Motion.Cursor.Damping)
	v.SetDefault("motion.cursor.mass", cfg.Motion.Cursor.Mass)
	v.SetDefault("motion.spotlight.stiffness", cfg.Motion.Spotlight.Stiffness)
	v.SetDefault("motion.spotlight.damping", cfg.Motion.Spotlight.Damping)
	v.SetDefault("motion.spotlight.mass", cfg.Motion.Spotlight.Mass)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("mouse", cfg.Mouse)
}
