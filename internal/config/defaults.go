package config

import (
	"time"

	"github.com/ellen-studio/folio/internal/clock"
	"github.com/ellen-studio/folio/internal/motion"
	"github.com/ellen-studio/folio/internal/theme"
)

// Default values.
const (
	DefaultDismissDelay     = 1500 * time.Millisecond
	DefaultMobileBreakpoint = 80
	DefaultScrollThreshold  = 2
	DefaultFPS              = 60
	DefaultLogLevel         = "info"
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{Default: string(theme.IDDefault)},
		Loading: LoadingConfig{
			DismissDelay: DefaultDismissDelay,
		},
		Layout: LayoutConfig{
			MobileBreakpoint: DefaultMobileBreakpoint,
			ScrollThreshold:  DefaultScrollThreshold,
		},
		Clock: ClockConfig{
			Timezone: clock.DefaultZone,
			Interval: time.Second,
		},
		Motion: MotionConfig{
			FPS:       DefaultFPS,
			Cursor:    motion.CursorSpring,
			Spotlight: motion.SpotlightSpring,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Mouse: true,
	}
}
