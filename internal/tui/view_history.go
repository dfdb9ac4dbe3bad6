package tui

import (
	"fmt"
	"strings"

	"github.com/sant0-9/reformulator/internal/history"
)

// RenderHistory lists entries oldest first, numbered from the oldest shown.
func RenderHistory(entries []history.Entry) string {
	if len(entries) == 0 {
		return styleSubtitle.Render("No history yet.") + "\n"
	}

	var b strings.Builder
	for i, e := range entries {
		header := fmt.Sprintf("#%d  %s", i+1, e.Timestamp)
		if p := formatParameters(e.Parameters); p != "" {
			header += "  " + p
		}
		b.WriteString(styleLabel.Render(header))
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render("> " + truncate(oneLine(e.Original), boxWidth-2)))
		b.WriteString("\n")
		b.WriteString(styleBox.Width(boxWidth).Render(e.Reformulated))
		b.WriteString("\n")
	}
	return b.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
