package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")

	// Section titles
	Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Secondary information
	Subtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Group labels in listings
	Label = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Box
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)
)
