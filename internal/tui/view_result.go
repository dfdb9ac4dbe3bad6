package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sant0-9/reformulator/internal/history"
)

// ResultView is what RenderResult shows
type ResultView struct {
	Text       string
	Model      string
	Duration   time.Duration
	Parameters history.Parameters
}

func RenderResult(r ResultView) string {
	var b strings.Builder

	text := r.Text
	if text == "" {
		text = styleSubtitle.Render("(empty answer after cleaning)")
	}
	b.WriteString(styleResultBox.Render(text))
	b.WriteString("\n")

	var meta []string
	if r.Model != "" {
		meta = append(meta, r.Model)
	}
	if r.Duration > 0 {
		meta = append(meta, r.Duration.Truncate(100*time.Millisecond).String())
	}
	if p := formatParameters(r.Parameters); p != "" {
		meta = append(meta, p)
	}
	meta = append(meta, fmt.Sprintf("~%d tokens", estimateTokens(r.Text)))
	b.WriteString(styleSubtitle.Render(strings.Join(meta, "  |  ")))
	b.WriteString("\n")

	return b.String()
}

func formatParameters(p history.Parameters) string {
	var parts []string
	for _, v := range []string{p.Tone, p.Format, p.Length} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " / ")
}
