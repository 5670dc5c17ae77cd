package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// On time: green for good news
	colorOnTime = color.New(color.FgGreen)

	// Late or early: red so it stands out
	colorOffTime = color.New(color.FgRed, color.Bold)

	// Overnight marker and warnings: yellow
	colorWarn = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

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

func formatOnTime(s string) string {
	return colorOnTime.Sprint(s)
}

func formatOffTime(s string) string {
	return colorOffTime.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
