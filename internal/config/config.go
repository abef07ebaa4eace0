// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/picker"
)

// dateTimeLayout is accepted wherever a date expression is, for time-aware bounds.
const dateTimeLayout = "2006-01-02 15:04"

// Config holds the application configuration.
type Config struct {
	Picker      PickerConfig       `toml:"picker" yaml:"picker"`
	TimePicker  TimePickerConfig   `toml:"time_picker" yaml:"time_picker"`
	Locale      LocaleConfig       `toml:"locale" yaml:"locale"`
	Ranges      []RangeConfig      `toml:"ranges" yaml:"ranges" validate:"dive"`
	CustomDates []CustomDateConfig `toml:"custom_dates" yaml:"custom_dates" validate:"dive"`
	UI          UIConfig           `toml:"ui" yaml:"ui"`
}

// PickerConfig holds the selection behaviour and bounds.
// Date fields take relative expressions such as "today", "today-7d" or "2024-03-10".
type PickerConfig struct {
	StartDate        string   `toml:"start_date" yaml:"start_date" validate:"omitempty,dateexpr"`
	EndDate          string   `toml:"end_date" yaml:"end_date" validate:"omitempty,dateexpr"`
	MinDate          string   `toml:"min_date" yaml:"min_date" validate:"omitempty,dateexpr"`
	MaxDate          string   `toml:"max_date" yaml:"max_date" validate:"omitempty,dateexpr"`
	MaxSpan          string   `toml:"max_span" yaml:"max_span" validate:"omitempty,span"` // e.g. "7d", "1m"
	SingleDate       bool     `toml:"single_date" yaml:"single_date"`
	LinkedCalendars  bool     `toml:"linked_calendars" yaml:"linked_calendars"`
	AutoApply        bool     `toml:"auto_apply" yaml:"auto_apply"`
	ShowCustomRange  bool     `toml:"show_custom_range" yaml:"show_custom_range"`
	MinYear          int      `toml:"min_year" yaml:"min_year" validate:"omitempty,gte=1,lte=9999"`
	MaxYear          int      `toml:"max_year" yaml:"max_year" validate:"omitempty,gte=1,lte=9999"`
	DisabledWeekdays []string `toml:"disabled_weekdays" yaml:"disabled_weekdays" validate:"dive,weekday"`
	DisabledDates    []string `toml:"disabled_dates" yaml:"disabled_dates" validate:"dive,datetime=2006-01-02"`
}

// TimePickerConfig holds the hour/minute/second picker settings.
type TimePickerConfig struct {
	Enabled   bool `toml:"enabled" yaml:"enabled"`
	Seconds   bool `toml:"seconds" yaml:"seconds"`
	Increment int  `toml:"increment" yaml:"increment" validate:"gte=1,lte=60"` // minutes
	HourMode  int  `toml:"hour_mode" yaml:"hour_mode" validate:"oneof=12 24"`
}

// LocaleConfig holds display names and layouts.
type LocaleConfig struct {
	Format           string   `toml:"format" yaml:"format"` // Go layout, empty picks one from the time picker settings
	Separator        string   `toml:"separator" yaml:"separator" validate:"required"`
	FirstDay         int      `toml:"first_day" yaml:"first_day" validate:"gte=0,lte=6"` // 0 = Sunday
	MonthNames       []string `toml:"month_names" yaml:"month_names" validate:"omitempty,len=12"`
	DayNames         []string `toml:"day_names" yaml:"day_names" validate:"omitempty,len=7"` // Sunday first
	Weekend          []string `toml:"weekend" yaml:"weekend" validate:"dive,weekday"`
	ApplyLabel       string   `toml:"apply_label" yaml:"apply_label" validate:"required"`
	CancelLabel      string   `toml:"cancel_label" yaml:"cancel_label" validate:"required"`
	CustomRangeLabel string   `toml:"custom_range_label" yaml:"custom_range_label" validate:"required"`
	Timezone         string   `toml:"timezone" yaml:"timezone" validate:"omitempty,zone"` // IANA name or "Local"
}

// RangeConfig is a named preset range.
type RangeConfig struct {
	Label string `toml:"label" yaml:"label" validate:"required"`
	Start string `toml:"start" yaml:"start" validate:"required,dateexpr"`
	End   string `toml:"end" yaml:"end" validate:"required,dateexpr"`
}

// CustomDateConfig tags a day with display classes.
type CustomDateConfig struct {
	Date string   `toml:"date" yaml:"date" validate:"datetime=2006-01-02"`
	Tags []string `toml:"tags" yaml:"tags" validate:"min=1,dive,required"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme" yaml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("weekday", validateWeekday)
	_ = validate.RegisterValidation("span", validateSpan)
	_ = validate.RegisterValidation("dateexpr", validateDateExpr)
	_ = validate.RegisterValidation("zone", validateZone)
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := dateutil.ParseWeekday(fl.Field().String())
	return ok
}

func validateSpan(fl validator.FieldLevel) bool {
	_, err := picker.ParseSpan(fl.Field().String())
	return err == nil
}

func validateZone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}

func validateDateExpr(fl validator.FieldLevel) bool {
	_, err := parseDateExpr(fl.Field().String(), time.Now())
	return err == nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			StartDate:       "today",
			EndDate:         "today",
			LinkedCalendars: true,
			ShowCustomRange: true,
		},
		TimePicker: TimePickerConfig{
			Increment: 1,
			HourMode:  12,
		},
		Locale: LocaleConfig{
			Separator:        " - ",
			FirstDay:         1,
			Weekend:          []string{"saturday", "sunday"},
			ApplyLabel:       "Apply",
			CancelLabel:      "Cancel",
			CustomRangeLabel: "Custom Range",
			Timezone:         "Local",
		},
		Ranges: []RangeConfig{
			{Label: "Today", Start: "today", End: "today"},
			{Label: "Yesterday", Start: "yesterday", End: "yesterday"},
			{Label: "Last 7 Days", Start: "today-6d", End: "today"},
			{Label: "Last 30 Days", Start: "today-29d", End: "today"},
			{Label: "This Month", Start: "start-of-month", End: "end-of-month"},
			{Label: "Last Month", Start: "start-of-prev-month", End: "end-of-prev-month"},
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rangepick", "config.toml")
}

// EnvFile holds RANGEPICK_* overrides for the current directory.
const EnvFile = ".env"

// Load loads configuration from the default path, merging with defaults and env vars.
// Variables in EnvFile are added to the environment first; real env vars win.
func Load() (*Config, error) {
	if err := loadDotEnv(EnvFile); err != nil {
		return nil, err
	}
	return LoadFrom(DefaultConfigPath())
}

// loadDotEnv exports the variables in path that are not already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// Lists in the file replace the defaults instead of extending them.
	ranges, weekend := cfg.Ranges, cfg.Locale.Weekend
	cfg.Ranges, cfg.Locale.Weekend = nil, nil

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Ranges == nil {
		cfg.Ranges = ranges
	}
	if cfg.Locale.Weekend == nil {
		cfg.Locale.Weekend = weekend
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Picker overrides
	if v := os.Getenv("RANGEPICK_START_DATE"); v != "" {
		cfg.Picker.StartDate = v
	}
	if v := os.Getenv("RANGEPICK_END_DATE"); v != "" {
		cfg.Picker.EndDate = v
	}
	if v := os.Getenv("RANGEPICK_MIN_DATE"); v != "" {
		cfg.Picker.MinDate = v
	}
	if v := os.Getenv("RANGEPICK_MAX_DATE"); v != "" {
		cfg.Picker.MaxDate = v
	}
	if v := os.Getenv("RANGEPICK_MAX_SPAN"); v != "" {
		cfg.Picker.MaxSpan = v
	}
	envBool("RANGEPICK_SINGLE_DATE", &cfg.Picker.SingleDate)
	envBool("RANGEPICK_AUTO_APPLY", &cfg.Picker.AutoApply)
	envBool("RANGEPICK_LINKED_CALENDARS", &cfg.Picker.LinkedCalendars)

	// Time picker overrides
	envBool("RANGEPICK_TIME_PICKER", &cfg.TimePicker.Enabled)
	envInt("RANGEPICK_TIME_INCREMENT", &cfg.TimePicker.Increment)
	envInt("RANGEPICK_HOUR_MODE", &cfg.TimePicker.HourMode)

	// Locale overrides
	if v := os.Getenv("RANGEPICK_FORMAT"); v != "" {
		cfg.Locale.Format = v
	}
	envInt("RANGEPICK_FIRST_DAY", &cfg.Locale.FirstDay)
	if v := os.Getenv("RANGEPICK_TIMEZONE"); v != "" {
		cfg.Locale.Timezone = v
	}

	// UI overrides
	if v := os.Getenv("RANGEPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

func envBool(key string, dst *bool) {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		*dst = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	if c.Picker.MinYear != 0 && c.Picker.MaxYear != 0 && c.Picker.MinYear > c.Picker.MaxYear {
		return errors.New("min_year must not be after max_year")
	}

	now := time.Now()
	if c.Picker.MinDate != "" && c.Picker.MaxDate != "" {
		minDate, _ := parseDateExpr(c.Picker.MinDate, now)
		maxDate, _ := parseDateExpr(c.Picker.MaxDate, now)
		if maxDate.Before(minDate) {
			return fmt.Errorf("max_date: %w", dateutil.ErrEndDateBeforeStart)
		}
	}

	seen := make(map[string]bool, len(c.Ranges))
	for _, r := range c.Ranges {
		if seen[r.Label] {
			return fmt.Errorf("duplicate range label: %s", r.Label)
		}
		seen[r.Label] = true
		start, errS := parseDateExpr(r.Start, now)
		end, errE := parseDateExpr(r.End, now)
		if errS == nil && errE == nil && dateutil.BeforeDay(end, start) {
			return fmt.Errorf("range %q: %w", r.Label, dateutil.ErrEndDateBeforeStart)
		}
	}
	return nil
}

// formatValidationErrors flattens validator errors into one message
// keyed by the config file names.
func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" must be set")
		case "weekday":
			msgs = append(msgs, fmt.Sprintf("%s: invalid weekday %q", field, fe.Value()))
		case "span":
			msgs = append(msgs, fmt.Sprintf("%s: invalid span %q", field, fe.Value()))
		case "zone":
			msgs = append(msgs, fmt.Sprintf("%s: unknown time zone %q", field, fe.Value()))
		case "dateexpr":
			msgs = append(msgs, fmt.Sprintf("%s: invalid date expression %q", field, fe.Value()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be in YYYY-MM-DD format, got %q", field, fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(fe.Param()), ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// parseDateExpr accepts relative expressions and "YYYY-MM-DD HH:MM".
func parseDateExpr(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(s), now.Location()); err == nil {
		return t, nil
	}
	return dateutil.ParseRelativeDate(s, now)
}

// hasClock reports whether s carries an explicit time of day.
func hasClock(s string) bool {
	_, err := time.Parse(dateTimeLayout, strings.TrimSpace(s))
	return err == nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
// The format follows the file extension.
func (c *Config) SaveTo(path string) error {
	path = expandPath(path)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
