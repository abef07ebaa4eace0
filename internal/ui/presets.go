package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/picker"
)

func (a *App) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset ranges",
		Long: `List the configured preset ranges resolved against today.

Presets outside min_date/max_date are clipped or dropped, exactly as
the picker shows them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, opts, err := a.newEngine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			presets := engine.Presets()
			if len(presets) == 0 {
				fmt.Fprintln(out, "No preset ranges configured.")
				return nil
			}

			width := 0
			for _, p := range presets {
				width = max(width, len([]rune(p.Label)))
			}
			for _, p := range presets {
				r := Range{
					Start: p.Start,
					End:   p.End,
					Text:  picker.FormatRange(p.Start, p.End, opts.Locale, opts.Single),
				}
				fmt.Fprintf(out, "  %s  %s  %s\n",
					formatHeader(fmt.Sprintf("%-*s", width, p.Label)),
					r.Text,
					formatMuted(pluralDays(r.Days())))
			}
			return nil
		},
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "(1 day)"
	}
	return fmt.Sprintf("(%d days)", n)
}
