// Package calendar builds month grids and coordinates the two visible months.
package calendar

import (
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// Grid dimensions. Six weeks always cover any month regardless of offset.
const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols
)

// Matrix is a fully populated 6x7 month grid, row-major.
type Matrix [Rows][Cols]time.Time

// Anchor normalizes t to day 2 of its month, keeping the wall clock.
// Day 2 survives month shifts without overflowing (Jan 31 + 1 month).
func Anchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 2, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// AddMonths shifts an anchor by n months.
func AddMonths(anchor time.Time, n int) time.Time {
	return Anchor(anchor).AddDate(0, n, 0)
}

// Build returns the grid for anchor's month with columns starting at firstDay.
// Every cell carries the anchor's time of day.
func Build(anchor time.Time, firstDay time.Weekday) Matrix {
	year, month, _ := anchor.Date()
	hour, minute, second := anchor.Clock()
	loc := anchor.Location()

	day1 := time.Date(year, month, 1, hour, minute, second, 0, loc)
	offset := (int(day1.Weekday()) - int(firstDay) + 7) % 7

	var m Matrix
	for i := 0; i < Cells; i++ {
		// time.Date normalizes out-of-range days across month and year edges.
		m[i/Cols][i%Cols] = time.Date(year, month, 1-offset+i, hour, minute, second, 0, loc)
	}
	return m
}

// First returns the top-left cell.
func (m Matrix) First() time.Time {
	return m[0][0]
}

// Last returns the bottom-right cell.
func (m Matrix) Last() time.Time {
	return m[Rows-1][Cols-1]
}

// Find locates the cell falling on date's day.
func (m Matrix) Find(date time.Time) (row, col int, ok bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if dateutil.SameDay(m[r][c], date) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
