package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	pushedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1"))
	plannedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	shaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9f83e4"))
)

var colorEnabled = (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) &&
	os.Getenv("NO_COLOR") == ""

// SetColor forces colored output on or off
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Pushed styles the status of a pushed branch
func Pushed(text string) string {
	return render(pushedStyle, text)
}

// Skipped styles the status of an up-to-date branch
func Skipped(text string) string {
	return render(skippedStyle, text)
}

// Planned styles the status of a push left out by a dry run
func Planned(text string) string {
	return render(plannedStyle, text)
}

// ShortSHA returns the abbreviated and styled form of a commit id
func ShortSHA(sha string) string {
	if len(sha) > 8 {
		sha = sha[:8]
	}
	return render(shaStyle, sha)
}
