package input

import "testing"

var labels = []string{"Today", "Yesterday", "Last 7 Days", "Last 30 Days", "This Month"}

func TestMatchingPresets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "blank", input: "   ", want: 0},
		{name: "date_text", input: "03/01/2024", want: 0},
		{name: "prefix", input: "last", want: 2},
		{name: "case_insensitive", input: "TOD", want: 1},
		{name: "full", input: "This Month", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingPresets(tt.input, labels)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAutocomplete(t *testing.T) {
	value, ok := Autocomplete("last 3", labels)
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "Last 30 Days" {
		t.Fatalf("value = %q, want %q", value, "Last 30 Days")
	}
	if _, ok := Autocomplete("zzz", labels); ok {
		t.Fatal("unexpected autocomplete")
	}
}

func TestExactPreset(t *testing.T) {
	if got, ok := ExactPreset("  yesterday ", labels); !ok || got != "Yesterday" {
		t.Fatalf("ExactPreset = %q, %v", got, ok)
	}
	if _, ok := ExactPreset("Yester", labels); ok {
		t.Fatal("prefix should not be an exact match")
	}
}
