package output

import "github.com/charmbracelet/lipgloss"

// Color palette for printed diagnostics.
var (
	// ColorRed is used for error diagnostics.
	ColorRed = lipgloss.Color("196")

	// ColorYellow is used for warning diagnostics.
	ColorYellow = lipgloss.Color("220")

	// ColorCyan is used for file positions and symbol names.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for informational diagnostics.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles mapping diagnostic concepts to visual presentation.
var (
	// StyleError styles error severity labels.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// StyleWarning styles warning severity labels.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleInfo styles info severity labels.
	StyleInfo = lipgloss.NewStyle().Foreground(ColorBlue)

	// StylePos styles source positions (file:line:col).
	StylePos = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)
)
