// Package cli provides the folio command line.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ellen-studio/folio/internal/config"
)

// Version and Commit are set at build time.
var (
	Version = "dev"
	Commit  = ""
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath     string
	theme          string
	logLevel       string
	noMouse        bool
	nonInteractive bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Ellen.sys portfolio in the terminal",
		Long: `Ellen.sys portfolio in the terminal.

Run without arguments to pick a palette and browse the portfolio.

Settings are read from $XDG_CONFIG_HOME/folio/config.yaml, a .env file in
the working directory and FOLIO_ environment variables, e.g.
FOLIO_THEME_DEFAULT=neon.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	flags.StringVar(&opts.theme, "theme", "", "palette highlighted on the loading screen")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable pointer tracking")
	flags.BoolVar(&opts.nonInteractive, "non-interactive", false, "never start the interactive UI")

	cmd.AddCommand(newThemesCmd(), newClockCmd(opts))
	return cmd
}

// loadConfig reads configuration and applies flag overrides on top.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme.Default = strings.ToLower(strings.TrimSpace(o.theme))
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if o.noMouse {
		cfg.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}
	return cfg, nil
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	opts := []fang.Option{fang.WithVersion(Version)}
	if Commit != "" {
		opts = append(opts, fang.WithCommit(Commit))
	}
	return fang.Execute(ctx, newRootCmd(), opts...)
}
