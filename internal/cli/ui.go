package cli

import (
	"github.com/spf13/cobra"

	"github.com/ellen-studio/folio/internal/config"
	"github.com/ellen-studio/folio/internal/logging"
	"github.com/ellen-studio/folio/internal/tui"
)

func runTUI(cmd *cobra.Command, opts *options) error {
	if opts.isNonInteractive() {
		return &PreflightError{
			Message:  "folio needs an interactive terminal",
			Hint:     "Run it from a TTY without --non-interactive or " + nonInteractiveEnv,
			NextStep: "folio themes",
		}
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if logFile == "" {
		if logFile, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	closer, err := logging.Init(logging.Config{Level: cfg.Log.Level, File: logFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger := logging.Component("cli")
	logger.Info().
		Str("version", Version).
		Str("theme", cfg.Theme.Default).
		Bool("mouse", cfg.Mouse).
		Msg("starting ui")

	tuiConfig, err := tui.NewConfig(cfg)
	if err != nil {
		return err
	}
	if err := tui.RunWithConfig(cmd.Context(), tuiConfig); err != nil {
		logger.Error().Err(err).Msg("ui exited")
		return err
	}
	logger.Info().Msg("ui closed")
	return nil
}
