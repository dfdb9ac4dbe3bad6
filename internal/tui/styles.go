package tui

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sant0-9/reformulator/internal/tui/styles"
)

// boxWidth is the content width of rendered boxes.
const boxWidth = 70

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Interactive reports whether f is a terminal the spinner can draw on.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	styleTitle    = styles.Title
	styleSubtitle = styles.Subtitle
	styleLabel    = styles.Label
	styleBox      = styles.Box
	styleError    = styles.Error
	styleSuccess  = styles.Success

	styleResultBox = styles.Box.
			Width(boxWidth).
			BorderForeground(styles.ColorPrimary)

	styleErrorBox = styles.Box.
			Width(boxWidth).
			BorderForeground(styles.ColorError)
)
