package ui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/picker"
	"github.com/javiermolinar/rangepick/internal/tui"
)

var testNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Locale.Timezone = "UTC"
	return cfg
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	DisableColor()
	t.Cleanup(func() { color.NoColor = prev })
}

func runApp(t *testing.T, run TUIRunner, args ...string) (string, string, error) {
	t.Helper()
	noColor(t)
	options := []AppOption{WithClock(func() time.Time { return testNow })}
	if run != nil {
		options = append(options, WithTUIRunner(run))
	}
	app := NewApp(testConfig(), options...)
	var stdout, stderr bytes.Buffer
	app.SetOutput(&stdout, &stderr)
	app.SetArgs(args)
	err := app.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runApp(t, nil, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "rangepick dev") {
		t.Fatalf("out = %q", out)
	}
}

func TestParseCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "text_custom_label",
			args: []string{"parse", "03/04/2024 - 03/08/2024"},
			want: []string{"03/04/2024 - 03/08/2024  (Custom Range)"},
		},
		{
			name: "text_preset_label",
			args: []string{"parse", "03/09/2024 - 03/15/2024"},
			want: []string{"(Last 7 Days)"},
		},
		{
			name: "reversed_is_swapped",
			args: []string{"parse", "03/08/2024 - 03/04/2024"},
			want: []string{"03/04/2024 - 03/08/2024"},
		},
		{
			name: "ics_all_day",
			args: []string{"parse", "03/04/2024 - 03/08/2024", "--output", "ics"},
			want: []string{"BEGIN:VEVENT", "DTSTART;VALUE=DATE:20240304", "DTEND;VALUE=DATE:20240309", "SUMMARY:Custom Range"},
		},
		{
			name: "ics_timed",
			args: []string{"parse", "03/04/2024 9:30 AM - 03/04/2024 5:00 PM", "--time", "-o", "ics"},
			want: []string{"DTSTART:20240304T093000Z", "DTEND:20240304T170000Z"},
		},
		{
			name: "single_date",
			args: []string{"parse", "03/04/2024", "--single"},
			want: []string{"03/04/2024"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, nil, tt.args...)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestParseCmd_JSON(t *testing.T) {
	out, _, err := runApp(t, nil, "parse", "03/04/2024 - 03/08/2024", "--output", "json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got Range
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if !got.Start.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", got.Start)
	}
	if !got.End.Equal(time.Date(2024, 3, 8, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end = %v", got.End)
	}
	if got.Text != "03/04/2024 - 03/08/2024" || got.Label != "Custom Range" {
		t.Fatalf("range = %+v", got)
	}
}

func TestParseCmd_Mismatch(t *testing.T) {
	_, _, err := runApp(t, nil, "parse", "March 4th")
	if !errors.Is(err, picker.ErrTextMismatch) {
		t.Fatalf("err = %v, want ErrTextMismatch", err)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := runApp(t, nil, "parse", "03/04/2024 - 03/08/2024", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("err = %v", err)
	}
}

func TestPresetsCmd(t *testing.T) {
	out, _, err := runApp(t, nil, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, want := range []string{
		"Today         03/15/2024 - 03/15/2024  (1 day)",
		"Last 7 Days   03/09/2024 - 03/15/2024  (7 days)",
		"This Month    03/01/2024 - 03/31/2024  (31 days)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMonthCmd(t *testing.T) {
	tests := []struct {
		name      string
		width     string
		wantSplit bool
	}{
		{name: "side_by_side", width: "80"},
		{name: "stacked", width: "30", wantSplit: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, nil, "month", "2024-03", "--width", tt.width, "--start", "2024-03-04", "--end", "2024-03-08")
			if err != nil {
				t.Fatalf("month: %v", err)
			}
			lines := strings.Split(out, "\n")
			first := lines[0]
			if !strings.Contains(first, "March 2024") {
				t.Fatalf("first line = %q", first)
			}
			if split := !strings.Contains(first, "April 2024"); split != tt.wantSplit {
				t.Fatalf("first line = %q, stacked = %v want %v", first, split, tt.wantSplit)
			}
			if !strings.Contains(lines[1], " Mo Tu We Th Fr Sa Su") {
				t.Fatalf("header = %q", lines[1])
			}
			if !strings.HasPrefix(lines[2], " 26 27 28 29  1  2  3") {
				t.Fatalf("first week = %q", lines[2])
			}
			if !strings.Contains(out, "03/04/2024 - 03/08/2024") {
				t.Fatalf("range text missing:\n%s", out)
			}
		})
	}
}

func TestMonthCmd_BadMonth(t *testing.T) {
	_, _, err := runApp(t, nil, "month", "March")
	if err == nil || !strings.Contains(err.Error(), "want YYYY-MM") {
		t.Fatalf("err = %v", err)
	}
}

func TestRootRunsPicker(t *testing.T) {
	var gotOpts picker.Options
	applied := func(_ *config.Config, opts picker.Options, _ bool) (tui.Result, error) {
		gotOpts = opts
		return tui.Result{
			Start:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 3, 8, 23, 59, 59, 0, time.UTC),
			Text:    "03/04/2024 - 03/08/2024",
			Applied: true,
		}, nil
	}

	out, _, err := runApp(t, applied, "--start", "2024-03-04", "--single", "--time")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if out != "03/04/2024 - 03/08/2024\n" {
		t.Fatalf("out = %q", out)
	}
	if !gotOpts.Single || !gotOpts.Time.Enabled {
		t.Fatalf("flags not applied: single=%v time=%v", gotOpts.Single, gotOpts.Time.Enabled)
	}
	if gotOpts.Start.Day() != 4 || gotOpts.Start.Month() != time.March {
		t.Fatalf("start = %v", gotOpts.Start)
	}

	cancelled := func(*config.Config, picker.Options, bool) (tui.Result, error) {
		return tui.Result{}, nil
	}
	out, errOut, err := runApp(t, cancelled)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if out != "" || !strings.Contains(errOut, "cancelled") {
		t.Fatalf("out = %q err = %q", out, errOut)
	}
}

func TestRootPropagatesPickerError(t *testing.T) {
	boom := errors.New("predicate failed")
	failing := func(*config.Config, picker.Options, bool) (tui.Result, error) {
		return tui.Result{}, boom
	}
	if _, _, err := runApp(t, failing); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigFlagLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := testConfig()
	cfg.Picker.SingleDate = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	out, _, err := runApp(t, nil, "--config", path, "parse", "03/04/2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(out, "03/04/2024") || strings.Contains(out, " - ") {
		t.Fatalf("single-date config not used: %q", out)
	}
}
