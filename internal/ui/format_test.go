package ui

import (
	"strings"
	"testing"
	"time"
)

func TestRangeUID(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 23, 59, 59, 0, time.UTC)

	a := rangeUID(Range{Start: start, End: end, Label: "Sprint"})
	b := rangeUID(Range{Start: start, End: end, Text: "other text"})
	if a != b {
		t.Fatalf("uid depends on label/text: %q vs %q", a, b)
	}
	if !strings.HasSuffix(a, "@rangepick") {
		t.Fatalf("uid = %q", a)
	}
	if c := rangeUID(Range{Start: start, End: end.AddDate(0, 0, 1)}); c == a {
		t.Fatal("different ranges share a uid")
	}
}

func TestRangeDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{
			name:  "same_day",
			start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC),
			want:  1,
		},
		{
			name:  "week",
			start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
			want:  7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Range{Start: tt.start, End: tt.end}).Days(); got != tt.want {
				t.Fatalf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}
