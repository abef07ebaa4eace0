package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  rangepick config
  rangepick config --config ~/.config/rangepick/config.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(a.configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Picker.StartDate = promptValue(reader, out, "Start date (YYYY-MM-DD, today, today-7d)", cfg.Picker.StartDate)
	cfg.Picker.EndDate = promptValue(reader, out, "End date", cfg.Picker.EndDate)
	cfg.Picker.MinDate = promptValue(reader, out, "Min date (empty for none)", cfg.Picker.MinDate)
	cfg.Picker.MaxDate = promptValue(reader, out, "Max date (empty for none)", cfg.Picker.MaxDate)
	cfg.Picker.MaxSpan = promptValue(reader, out, "Max span, e.g. 7d or 1m (empty for none)", cfg.Picker.MaxSpan)
	cfg.Picker.SingleDate = promptBool(reader, out, "Single date", cfg.Picker.SingleDate)
	cfg.Picker.LinkedCalendars = promptBool(reader, out, "Linked calendars", cfg.Picker.LinkedCalendars)
	cfg.Picker.AutoApply = promptBool(reader, out, "Auto apply", cfg.Picker.AutoApply)
	cfg.Picker.DisabledWeekdays = promptSlice(reader, out, "Disabled weekdays (comma-separated)", cfg.Picker.DisabledWeekdays)
	cfg.TimePicker.Enabled = promptBool(reader, out, "Time picker", cfg.TimePicker.Enabled)
	cfg.TimePicker.Increment = promptInt(reader, out, "Minute increment", cfg.TimePicker.Increment)
	cfg.TimePicker.HourMode = promptInt(reader, out, "Hour mode (12 or 24)", cfg.TimePicker.HourMode)
	cfg.Locale.FirstDay = promptInt(reader, out, "First day of week (0 = Sunday)", cfg.Locale.FirstDay)
	cfg.Locale.Format = promptValue(reader, out, "Date format (Go layout, empty for default)", cfg.Locale.Format)
	cfg.Locale.Timezone = promptValue(reader, out, "Time zone", cfg.Locale.Timezone)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[picker]")
	fmt.Fprintf(out, "  start_date        = %s\n", cfg.Picker.StartDate)
	fmt.Fprintf(out, "  end_date          = %s\n", cfg.Picker.EndDate)
	if cfg.Picker.MinDate != "" {
		fmt.Fprintf(out, "  min_date          = %s\n", cfg.Picker.MinDate)
	}
	if cfg.Picker.MaxDate != "" {
		fmt.Fprintf(out, "  max_date          = %s\n", cfg.Picker.MaxDate)
	}
	if cfg.Picker.MaxSpan != "" {
		fmt.Fprintf(out, "  max_span          = %s\n", cfg.Picker.MaxSpan)
	}
	fmt.Fprintf(out, "  single_date       = %t\n", cfg.Picker.SingleDate)
	fmt.Fprintf(out, "  linked_calendars  = %t\n", cfg.Picker.LinkedCalendars)
	fmt.Fprintf(out, "  auto_apply        = %t\n", cfg.Picker.AutoApply)
	fmt.Fprintf(out, "  show_custom_range = %t\n", cfg.Picker.ShowCustomRange)
	if len(cfg.Picker.DisabledWeekdays) > 0 {
		fmt.Fprintf(out, "  disabled_weekdays = %s\n", strings.Join(cfg.Picker.DisabledWeekdays, ", "))
	}
	fmt.Fprintln(out, "\n[time_picker]")
	fmt.Fprintf(out, "  enabled           = %t\n", cfg.TimePicker.Enabled)
	fmt.Fprintf(out, "  increment         = %d\n", cfg.TimePicker.Increment)
	fmt.Fprintf(out, "  hour_mode         = %d\n", cfg.TimePicker.HourMode)
	fmt.Fprintln(out, "\n[locale]")
	fmt.Fprintf(out, "  format            = %s\n", cfg.Locale.Format)
	fmt.Fprintf(out, "  separator         = %q\n", cfg.Locale.Separator)
	fmt.Fprintf(out, "  first_day         = %d\n", cfg.Locale.FirstDay)
	fmt.Fprintf(out, "  weekend           = %s\n", strings.Join(cfg.Locale.Weekend, ", "))
	fmt.Fprintf(out, "  timezone          = %s\n", cfg.Locale.Timezone)
	fmt.Fprintf(out, "\n[[ranges]]          %d presets\n", len(cfg.Ranges))
	for _, r := range cfg.Ranges {
		fmt.Fprintf(out, "  %-17s = %s .. %s\n", r.Label, r.Start, r.End)
	}
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme             = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	value := promptValue(reader, out, label+" (y/n)", yesNo(current))
	switch strings.ToLower(value) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	}
	return current
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Fprintf(out, "  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	if input == "-" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
