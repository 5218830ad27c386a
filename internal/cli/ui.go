package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	// styleTitle for headings (the file name in info output).
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleLabel for field labels.
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleOK and styleFail for validate verdicts.
	styleOK   = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconOK   = "✓"
	iconFail = "✗"
)
