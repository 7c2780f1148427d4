package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

// isolate points XDG lookups at an empty directory and runs the test from
// another one so no real config or .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Clock.Timezone != "Asia/Kolkata" {
		t.Errorf("expected Asia/Kolkata, got %q", cfg.Clock.Timezone)
	}
	if !cfg.Mouse {
		t.Error("expected mouse enabled by default")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loading.DismissDelay != DefaultDismissDelay {
		t.Errorf("expected dismiss delay %v, got %v", DefaultDismissDelay, cfg.Loading.DismissDelay)
	}
	if cfg.Motion.Cursor.Stiffness != 1000 || cfg.Motion.Cursor.Damping != 60 {
		t.Errorf("unexpected cursor spring %+v", cfg.Motion.Cursor)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
theme:
  default: NEON
loading:
  dismiss_delay: 250ms
layout:
  mobile_breakpoint: 100
motion:
  fps: 30
  spotlight:
    stiffness: 200
log:
  level: debug
mouse: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Default != "neon" {
		t.Errorf("expected theme neon, got %q", cfg.Theme.Default)
	}
	if cfg.Loading.DismissDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Loading.DismissDelay)
	}
	if cfg.Layout.MobileBreakpoint != 100 {
		t.Errorf("expected breakpoint 100, got %d", cfg.Layout.MobileBreakpoint)
	}
	if cfg.Layout.ScrollThreshold != DefaultScrollThreshold {
		t.Errorf("expected default scroll threshold, got %d", cfg.Layout.ScrollThreshold)
	}
	if cfg.Motion.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Motion.FPS)
	}
	if cfg.Motion.Spotlight.Stiffness != 200 || cfg.Motion.Spotlight.Damping != 20 {
		t.Errorf("expected partially overridden spotlight spring, got %+v", cfg.Motion.Spotlight)
	}
	if cfg.Mouse {
		t.Error("expected mouse disabled")
	}
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "config", "folio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme:\n  default: kpop\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Default != "kpop" {
		t.Errorf("expected kpop from XDG config, got %q", cfg.Theme.Default)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "clock:\n  timezone: UTC\n")
	t.Setenv("FOLIO_CLOCK_TIMEZONE", "Europe/Berlin")
	t.Setenv("FOLIO_LAYOUT_SCROLL_THRESHOLD", "7")
	t.Setenv("FOLIO_MOTION_CURSOR_MASS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Clock.Timezone != "Europe/Berlin" {
		t.Errorf("env should win over file, got %q", cfg.Clock.Timezone)
	}
	if cfg.Layout.ScrollThreshold != 7 {
		t.Errorf("expected 7, got %d", cfg.Layout.ScrollThreshold)
	}
	if cfg.Motion.Cursor.Mass != 2 {
		t.Errorf("expected cursor mass 2, got %v", cfg.Motion.Cursor.Mass)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(".env", []byte("FOLIO_THEME_DEFAULT=dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("FOLIO_THEME_DEFAULT") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("expected dark from .env, got %q", cfg.Theme.Default)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "motion:\n  fps: 0\nlog:\n  level: loud\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, want := range []string{"motion.fps", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestValidateSprings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Motion.Cursor.Mass = 0
	cfg.Motion.Spotlight.Damping = -1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "motion.cursor.mass") || !strings.Contains(err.Error(), "motion.spotlight.damping") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestUnknownThemeIsNotAnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Default = "sepia"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unknown theme should fall back, got %v", err)
	}
}
