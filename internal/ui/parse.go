package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/picker"
)

func (a *App) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Read range text the way the picker's input does",
		Long: `Parse range text in the configured format and print the range the
picker would commit: clamped to the constraints, swapped when reversed.

Example:
  rangepick parse "03/04/2024 - 03/08/2024" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, opts, err := a.newEngine()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if err := engine.SetText(text); err != nil {
				return fmt.Errorf("parsing %q: %w", text, err)
			}
			if err := engine.Err(); err != nil {
				return err
			}

			start, end := engine.Committed()
			label, _ := picker.MatchLabel(engine.Selection(), engine.Presets(), opts.Locale.CustomLabel, opts.ShowCustomRange)
			return writeRange(cmd.OutOrStdout(), a.output, Range{
				Start: start,
				End:   end,
				Label: label,
				Text:  picker.FormatRange(start, end, opts.Locale, opts.Single),
			}, !opts.Time.Enabled)
		},
	}
}
