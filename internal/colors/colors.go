// Package colors provides terminal color support for lineage output.
//
// Colors are applied only when the terminal supports them. NO_COLOR disables
// them, FORCE_COLOR enables them, and otherwise TERM and the stdout mode
// decide.
package colors

import (
	"os"
	"runtime"
	"strings"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"
	ColorGray  = "\033[90m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	BrightCyan   = "\033[96m"
)

// colorEnabled determines if color output should be used
var colorEnabled = shouldUseColor()

// shouldUseColor determines if the terminal supports colors
func shouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if runtime.GOOS == "windows" {
		// Windows Terminal and VS Code set these.
		if os.Getenv("WT_SESSION") != "" || os.Getenv("VSCODE_PID") != "" {
			return true
		}
		return strings.Contains(term, "color") || strings.Contains(term, "xterm")
	}

	if term == "dumb" || term == "" {
		return false
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return true
}

// SetColorEnabled allows manual control of color output
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsColorEnabled returns whether colors are currently enabled
func IsColorEnabled() bool {
	return colorEnabled
}

// colorize applies color to text if colors are enabled
func colorize(text, color string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return color + text + ColorReset
}

// Tree element coloring

// Root highlights the name at the top of a tree.
func Root(text string) string {
	return colorize(text, ColorBold+BrightBlue)
}

// Member colors an ordinary node name.
func Member(text string) string {
	return colorize(text, BrightCyan)
}

// Branch dims connector glyphs so names stand out.
func Branch(text string) string {
	return colorize(text, ColorGray)
}

// Generic color functions
func Red(text string) string {
	return colorize(text, BrightRed)
}

func Green(text string) string {
	return colorize(text, BrightGreen)
}

func Yellow(text string) string {
	return colorize(text, BrightYellow)
}

func Gray(text string) string {
	return colorize(text, ColorGray)
}

func Bold(text string) string {
	return colorize(text, ColorBold)
}

func Dim(text string) string {
	return colorize(text, ColorDim)
}

// Section headers with colors
func SectionHeader(text string) string {
	return Bold(text)
}

func ErrorText(text string) string {
	return Red(text)
}

func InfoText(text string) string {
	return colorize(text, BrightCyan)
}

func WarningText(text string) string {
	return Yellow(text)
}
