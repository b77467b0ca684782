package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("12")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
	ColorSelected  = lipgloss.Color("57")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorMuted).
				BorderBottom(true).
				Bold(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(ColorSelected)

	PageButtonStyle     = lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1)
	CurrentPageStyle    = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Underline(true).Padding(0, 1)
	DisabledButtonStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	EllipsisStyle       = lipgloss.NewStyle().Foreground(ColorLabel).Padding(0, 1)

	TotalLabelStyle = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	HelpStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	ErrorStyle      = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
