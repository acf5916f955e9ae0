// Package styles holds the lipgloss styles used for console output
package styles

import (
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/thenoetrevino/gradebook/internal/config"
)

var (
	// enabled is false until Init is called, so output stays plain in tests
	// and when color is turned off.
	enabled bool

	// Menu styles
	BannerStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	PromptStyle  lipgloss.Style
	SectionStyle lipgloss.Style // For headers like "Detailed Grade Report:"

	// Status styles
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all styles with the given color scheme
func Init(colors config.ColorScheme) {
	enabled = true

	BannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	PromptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Success))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))
}

// Disable turns styling off; Render returns text unchanged afterwards
func Disable() {
	enabled = false
}

// Enabled reports whether styles are applied
func Enabled() bool {
	return enabled
}

// Render applies style to text when styling is enabled
func Render(style lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return style.Render(text)
}

// IsTerminal reports whether w is a terminal. Styled text is only written to
// terminals; files, pipes and buffers get plain lines.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}
