package calendar

import (
	"testing"
	"time"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 2, 0, 0, 0, 0, time.UTC)
}

func assertMonths(t *testing.T, w *MonthWindow, left, right time.Time) {
	t.Helper()
	if w.Left().Year() != left.Year() || w.Left().Month() != left.Month() {
		t.Errorf("left = %s, want %s", w.Left().Format("2006-01"), left.Format("2006-01"))
	}
	if w.Right().Year() != right.Year() || w.Right().Month() != right.Month() {
		t.Errorf("right = %s, want %s", w.Right().Format("2006-01"), right.Format("2006-01"))
	}
	if w.Left().Day() != 2 || w.Right().Day() != 2 {
		t.Errorf("anchors must sit on day 2, got %v / %v", w.Left(), w.Right())
	}
}

func TestNewMonthWindow(t *testing.T) {
	w := NewMonthWindow(WindowConfig{Linked: true}, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	assertMonths(t, w, month(2024, 12), month(2025, 1))
}

func TestMonthWindow_LinkedNavigation(t *testing.T) {
	w := NewMonthWindow(WindowConfig{Linked: true}, month(2024, 3))

	steps := []struct {
		name string
		do   func()
	}{
		{"next left", func() { w.Next(Left) }},
		{"next right", func() { w.Next(Right) }},
		{"prev left", func() { w.Prev(Left) }},
		{"prev right", func() { w.Prev(Right) }},
		{"jump left", func() { w.Jump(Left, time.July, 2030, time.Time{}) }},
		{"jump right", func() { w.Jump(Right, time.January, 2031, time.Time{}) }},
		{"prev right again", func() { w.Prev(Right) }},
	}
	for _, s := range steps {
		s.do()
		if d := w.Distance(); d != 1 {
			t.Fatalf("after %s: distance = %d, want 1", s.name, d)
		}
	}
	assertMonths(t, w, month(2030, 11), month(2030, 12))
}

func TestMonthWindow_UnlinkedNavigation(t *testing.T) {
	w := NewMonthWindow(WindowConfig{Linked: false}, month(2024, 3))
	w.Next(Right)
	w.Next(Right)
	assertMonths(t, w, month(2024, 3), month(2024, 6))
	w.Prev(Left)
	assertMonths(t, w, month(2024, 2), month(2024, 6))
}

func TestMonthWindow_MaxDateClamp(t *testing.T) {
	maxDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	w := NewMonthWindow(WindowConfig{Linked: true, MaxDate: maxDate}, month(2024, 5))
	assertMonths(t, w, month(2024, 5), month(2024, 6))

	w.Next(Left)
	assertMonths(t, w, month(2024, 5), month(2024, 6))
	if d := w.Distance(); d != 1 {
		t.Errorf("distance after clamp = %d, want 1", d)
	}

	// Starting on the max month pushes left back so right stays on max.
	w = NewMonthWindow(WindowConfig{Linked: true, MaxDate: maxDate}, month(2024, 6))
	assertMonths(t, w, month(2024, 5), month(2024, 6))
}

func TestMonthWindow_MaxDateClampSkippedWhenSingle(t *testing.T) {
	maxDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	w := NewMonthWindow(WindowConfig{Linked: true, Single: true, MaxDate: maxDate}, month(2024, 6))
	assertMonths(t, w, month(2024, 6), month(2024, 7))
}

func TestMonthWindow_Follow(t *testing.T) {
	t.Run("already visible does not move", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: true}, month(2024, 3))
		w.Follow(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), true)
		assertMonths(t, w, month(2024, 3), month(2024, 4))
	})

	t.Run("out of view moves left to start", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: true}, month(2024, 3))
		w.Follow(time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC), true)
		assertMonths(t, w, month(2024, 8), month(2024, 9))
	})

	t.Run("unlinked shows end month on right", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: false}, month(2024, 3))
		w.Follow(time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC), true)
		assertMonths(t, w, month(2024, 8), month(2024, 11))
	})

	t.Run("unlinked same month shows next month", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: false}, month(2024, 3))
		w.Follow(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 8, 9, 0, 0, 0, 0, time.UTC), true)
		assertMonths(t, w, month(2024, 8), month(2024, 9))
	})

	t.Run("open selection on right side stays", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: true}, month(2024, 3))
		w.Follow(time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC), time.Time{}, false)
		assertMonths(t, w, month(2024, 3), month(2024, 4))
	})

	t.Run("open selection out of view resets", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: true}, month(2024, 3))
		w.Follow(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), time.Time{}, false)
		assertMonths(t, w, month(2025, 1), month(2025, 2))
	})
}

func TestMonthWindow_JumpClamps(t *testing.T) {
	cfg := WindowConfig{
		Linked:  true,
		MinYear: 2020,
		MaxYear: 2030,
		MinDate: time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("year below min year", func(t *testing.T) {
		w := NewMonthWindow(cfg, month(2024, 3))
		w.Jump(Left, time.August, 1999, time.Time{})
		assertMonths(t, w, month(2020, 8), month(2020, 9))
	})

	t.Run("month before min date", func(t *testing.T) {
		w := NewMonthWindow(cfg, month(2024, 3))
		w.Jump(Left, time.January, 2020, time.Time{})
		assertMonths(t, w, month(2020, 5), month(2020, 6))
	})

	t.Run("year above max year", func(t *testing.T) {
		w := NewMonthWindow(cfg, month(2024, 3))
		w.Jump(Left, time.February, 2099, time.Time{})
		assertMonths(t, w, month(2030, 2), month(2030, 3))
	})

	t.Run("right side not before selection start", func(t *testing.T) {
		w := NewMonthWindow(WindowConfig{Linked: false}, month(2024, 3))
		w.Jump(Right, time.January, 2024, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
		assertMonths(t, w, month(2024, 3), month(2024, 3))
	})
}

func TestMonthWindow_UnlinkedJumpKeepsOrder(t *testing.T) {
	tests := []struct {
		name        string
		side        Side
		month       time.Month
		year        int
		left, right time.Time
	}{
		{name: "left past right", side: Left, month: time.August, year: 2024, left: month(2024, 8), right: month(2024, 9)},
		{name: "left onto right", side: Left, month: time.April, year: 2024, left: month(2024, 4), right: month(2024, 5)},
		{name: "left before right", side: Left, month: time.January, year: 2024, left: month(2024, 1), right: month(2024, 4)},
		{name: "right stays after left", side: Right, month: time.June, year: 2024, left: month(2024, 3), right: month(2024, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewMonthWindow(WindowConfig{Linked: false}, month(2024, 3))
			assertMonths(t, w, month(2024, 3), month(2024, 4))
			w.Jump(tt.side, tt.month, tt.year, time.Time{})
			assertMonths(t, w, tt.left, tt.right)
		})
	}
}

func TestMonthWindow_Arrows(t *testing.T) {
	w := NewMonthWindow(WindowConfig{
		Linked:  true,
		MinDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MaxDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}, month(2024, 3))

	if w.CanPrev(Left) {
		t.Error("left prev must be hidden on the min month")
	}
	if w.CanNext(Left) {
		t.Error("left next must be hidden when linked")
	}
	if w.CanPrev(Right) {
		t.Error("right prev must be hidden when linked")
	}
	if !w.CanNext(Right) {
		t.Error("right next must be shown before the max month")
	}

	w.Jump(Right, time.December, 2024, time.Time{})
	if w.CanNext(Right) {
		t.Error("right next must be hidden on the max month")
	}
}
