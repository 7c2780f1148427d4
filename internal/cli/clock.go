package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellen-studio/folio/internal/clock"
)

func newClockCmd(opts *options) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Print the footer clock once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" {
				cfg, err := opts.loadConfig(cmd)
				if err != nil {
					return err
				}
				zone = cfg.Clock.Timezone
			}
			clk, err := clock.New(zone)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", clk.Now(), clk.Location())
			return err
		},
	}
	cmd.Flags().StringVar(&zone, "zone", "", "IANA time zone, overriding clock.timezone")
	return cmd
}
