package tui

import (
	"fmt"
	"strings"
	"time"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	b.WriteString(a.spinner.View())
	b.WriteString(" ")
	b.WriteString(styleTitle.Render(a.title))

	elapsed := time.Since(a.started).Truncate(100 * time.Millisecond)
	b.WriteString(styleSubtitle.Render(fmt.Sprintf("  %s", elapsed)))

	if a.detail != "" {
		b.WriteString("\n  ")
		b.WriteString(styleSubtitle.Render(truncate(a.detail, boxWidth)))
	}

	b.WriteString("\n  ")
	b.WriteString(styleSubtitle.Render("[Esc] Cancel"))
	b.WriteString("\n")

	return b.String()
}
