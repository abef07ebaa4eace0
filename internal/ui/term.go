package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Endpoints: reversed cyan so they read as the range edges
	colorEndpoint = color.New(color.FgBlack, color.BgCyan, color.Bold)

	// Days inside the range
	colorRange = color.New(color.FgCyan)

	colorToday    = color.New(color.Bold, color.Underline)
	colorWeekend  = color.New(color.FgYellow)
	colorTag      = color.New(color.FgMagenta)
	colorDisabled = color.New(color.FgRed, color.CrossedOut)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
