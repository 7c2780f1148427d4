// Package config loads folio settings from defaults, a YAML file, a .env
// file and FOLIO_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ellen-studio/folio/internal/motion"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Loading LoadingConfig `mapstructure:"loading"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	Clock   ClockConfig   `mapstructure:"clock"`
	Motion  MotionConfig  `mapstructure:"motion"`
	Log     LogConfig     `mapstructure:"log"`

	// Mouse enables pointer tracking for the cursor and spotlight effects.
	Mouse bool `mapstructure:"mouse"`
}

// ThemeConfig selects the palette highlighted on the loading screen. Unknown
// ids are not an error; they resolve to the default palette.
type ThemeConfig struct {
	Default string `mapstructure:"default"`
}

// LoadingConfig controls the loading screen.
type LoadingConfig struct {
	// DismissDelay is how long the loading overlay stays up after a theme
	// is picked.
	DismissDelay time.Duration `mapstructure:"dismiss_delay"`
}

// LayoutConfig controls responsive behavior.
type LayoutConfig struct {
	// MobileBreakpoint is the width in columns below which the compact
	// navbar and menu are used.
	MobileBreakpoint int `mapstructure:"mobile_breakpoint"`

	// ScrollThreshold is the scroll offset in rows past which the navbar
	// collapses.
	ScrollThreshold int `mapstructure:"scroll_threshold"`
}

// ClockConfig controls the footer clock.
type ClockConfig struct {
	Timezone string        `mapstructure:"timezone"`
	Interval time.Duration `mapstructure:"interval"`
}

// MotionConfig controls spring animation.
type MotionConfig struct {
	FPS       int                 `mapstructure:"fps"`
	Cursor    motion.SpringConfig `mapstructure:"cursor"`
	Spotlight motion.SpringConfig `mapstructure:"spotlight"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File overrides the default state-directory log path.
	File string `mapstructure:"file"`
}

// Validate checks the configuration for values the UI cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if c.Loading.DismissDelay < 0 {
		problems = append(problems, "loading.dismiss_delay must not be negative")
	}
	if c.Layout.MobileBreakpoint < 0 {
		problems = append(problems, "layout.mobile_breakpoint must not be negative")
	}
	if c.Layout.ScrollThreshold < 0 {
		problems = append(problems, "layout.scroll_threshold must not be negative")
	}
	if c.Clock.Interval <= 0 {
		problems = append(problems, "clock.interval must be positive")
	}
	if c.Motion.FPS < 1 || c.Motion.FPS > 240 {
		problems = append(problems, "motion.fps must be between 1 and 240")
	}
	problems = append(problems, validateSpring("motion.cursor", c.Motion.Cursor)...)
	problems = append(problems, validateSpring("motion.spotlight", c.Motion.Spotlight)...)
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of trace, debug, info, warn, error, disabled", c.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

var logLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "disabled": {},
}

func validateSpring(key string, s motion.SpringConfig) []string {
	var problems []string
	if s.Stiffness <= 0 {
		problems = append(problems, key+".stiffness must be positive")
	}
	if s.Damping < 0 {
		problems = append(problems, key+".damping must not be negative")
	}
	if s.Mass <= 0 {
		problems = append(problems, key+".mass must be positive")
	}
	return problems
}
