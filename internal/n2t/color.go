package n2t

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// noColor is set by --no-color
var noColor bool

// SetNoColor disables colored output regardless of the terminal
func SetNoColor(disable bool) {
	noColor = disable
}

// ShouldEnableColor determines if color output should be enabled based on:
// 1. the --no-color flag
// 2. NO_COLOR environment variable (https://no-color.org/)
// 3. Whether stdout is a terminal (TTY)
func ShouldEnableColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(os.Stdout)
}

func render(style lipgloss.Style, s string) string {
	if !ShouldEnableColor() {
		return s
	}
	return style.Render(s)
}

// Colored output helpers
func Red(s string) string    { return render(redStyle, s) }
func Green(s string) string  { return render(greenStyle, s) }
func Yellow(s string) string { return render(yellowStyle, s) }
func Cyan(s string) string   { return render(cyanStyle, s) }
func Bold(s string) string   { return render(boldStyle, s) }
