package cli

import (
	"github.com/spf13/cobra"

	"github.com/ellen-studio/folio/internal/theme"
)

type themeRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	Dark       bool   `json:"dark"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
	Font       string `json:"font"`
}

func newThemesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := themeRows(theme.Builtin())
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, rows)
			}

			t := newTable("ID", "NAME", "TONE", "ACCENT", "TAGLINE")
			for _, r := range rows {
				t.add(r.ID, r.Name, darkLabel(r.Dark), r.Accent, r.Tagline)
			}
			return t.write(out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func themeRows(reg *theme.Registry) []themeRow {
	defs := reg.Definitions()
	rows := make([]themeRow, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, themeRow{
			ID:         string(def.ID),
			Name:       def.Name,
			Tagline:    def.Tagline,
			Dark:       theme.IsDark(def.Tokens.Background),
			Background: def.Tokens.Background,
			Accent:     def.Tokens.Accent,
			Font:       string(def.Tokens.Font),
		})
	}
	return rows
}
