package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette entries are named after what they mark in launcher output. Each
// one has a light and a dark terminal variant.
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	colorHeading = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorNote    = lipgloss.AdaptiveColor{Light: "244", Dark: "250"}
	colorGuide   = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
	colorGroup   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorEnvKey  = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorEnvVal  = lipgloss.AdaptiveColor{Light: "136", Dark: "228"}
	colorVCS     = lipgloss.AdaptiveColor{Light: "127", Dark: "201"}
	colorOK      = lipgloss.AdaptiveColor{Light: "28", Dark: "82"}
	colorProblem = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
)
