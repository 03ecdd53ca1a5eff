package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles shared by the crlauncher commands.
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorHeading).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorNote).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(colorGuide)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(colorGroup)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorEnvKey)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorEnvVal)

	BackendStyle = lipgloss.NewStyle().
			Foreground(colorVCS)

	ValidStyle = lipgloss.NewStyle().
			Foreground(colorOK)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorProblem)
)

// KeyText styles an environment key
func KeyText(text string) string {
	return KeyStyle.Render(text)
}

// ValueText styles a configuration value
func ValueText(text string) string {
	return ValueStyle.Render(text)
}

// BackendText styles a VCS backend name
func BackendText(text string) string {
	return BackendStyle.Render(text)
}

// SourceText styles the name of the layer a value came from
func SourceText(text string) string {
	return InfoStyle.Render("(" + text + ")")
}

// Validation-specific styling functions

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// SummaryText styles summary information (dark gray)
func SummaryText(text string) string {
	return BranchStyle.Render(text)
}
