package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// TUIRunner runs the interactive picker and returns what it produced.
type TUIRunner func(cfg *config.Config, opts picker.Options, debug bool) (tui.Result, error)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	runTUI TUIRunner
	now    func() time.Time

	// Global flags
	debug      bool // Enable debug logging
	configPath string
	noColor    bool
	output     string
	start      string
	end        string
	single     bool
	timePicker bool
}

// AppOption configures optional App behavior.
type AppOption func(*App)

// WithTUIRunner replaces the interactive picker.
func WithTUIRunner(run TUIRunner) AppOption {
	return func(a *App) {
		a.runTUI = run
	}
}

// WithClock fixes the time used to resolve relative dates.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, options ...AppOption) *App {
	a := &App{config: cfg, runTUI: tui.RunWithDebug, now: time.Now}
	for _, opt := range options {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "rangepick",
		Short: "Pick a date range in the terminal",
		Long: `rangepick is a two-month calendar for choosing a start and end date.

Pick two days, a preset, or type the range, then apply it. The applied
range is printed as text, JSON, or an iCalendar event.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			if cmd.Flags().Changed("config") {
				cfg, err := config.LoadFrom(a.configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				a.config = cfg
			}
			return validateOutput(a.output)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPicker(cmd)
		},
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	flags.StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Config file (.toml, .yaml)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&a.output, "output", "o", FormatText, "Output format: text, json, ics")
	flags.StringVar(&a.start, "start", "", "Initial start (YYYY-MM-DD, today, today-7d, ...)")
	flags.StringVar(&a.end, "end", "", "Initial end")
	flags.BoolVar(&a.single, "single", false, "Pick a single date")
	flags.BoolVar(&a.timePicker, "time", false, "Enable the time picker")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.presetsCmd())
	a.root.AddCommand(a.parseCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rangepick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects stdout and stderr of every command.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) runPicker(cmd *cobra.Command) error {
	cfg, opts, err := a.pickerOptions()
	if err != nil {
		return err
	}
	res, err := a.runTUI(cfg, opts, a.debug)
	if err != nil {
		return err
	}
	if !res.Applied {
		fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("cancelled"))
		return nil
	}
	return writeRange(cmd.OutOrStdout(), a.output, Range{
		Start: res.Start,
		End:   res.End,
		Label: res.Label,
		Text:  res.Text,
	}, !opts.Time.Enabled)
}

// pickerOptions applies the command line overrides to a copy of the config
// and resolves it into engine options.
func (a *App) pickerOptions() (*config.Config, picker.Options, error) {
	cfg := *a.config
	if a.start != "" {
		cfg.Picker.StartDate = a.start
		if a.end == "" {
			cfg.Picker.EndDate = a.start
		}
	}
	if a.end != "" {
		cfg.Picker.EndDate = a.end
	}
	if a.single {
		cfg.Picker.SingleDate = true
	}
	if a.timePicker {
		cfg.TimePicker.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, picker.Options{}, fmt.Errorf("invalid options: %w", err)
	}
	opts, err := cfg.PickerOptions(a.now())
	if err != nil {
		return nil, picker.Options{}, fmt.Errorf("building picker: %w", err)
	}
	zone := opts.Locale.Zone()
	opts.Now = func() time.Time { return a.now().In(zone) }
	return &cfg, opts, nil
}

// newEngine builds a closed engine from the current options.
func (a *App) newEngine() (*picker.Engine, picker.Options, error) {
	_, opts, err := a.pickerOptions()
	if err != nil {
		return nil, picker.Options{}, err
	}
	engine, err := picker.New(opts, nil)
	if err != nil {
		return nil, picker.Options{}, fmt.Errorf("creating picker: %w", err)
	}
	return engine, opts, nil
}
