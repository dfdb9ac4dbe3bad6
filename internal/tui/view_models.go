package tui

import (
	"fmt"
	"strings"

	"github.com/sant0-9/reformulator/internal/llm"
)

// RenderModels lists installed models, marking the configured one.
func RenderModels(models []llm.ModelDescriptor, current string) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Installed models"))
	b.WriteString("\n")

	if len(models) == 0 {
		b.WriteString(styleBox.Width(boxWidth).Render(
			"No models found.\n\nIs Ollama running? Try: ollama serve\nThen pull one: ollama pull qwen2.5:3b"))
		b.WriteString("\n")
		return b.String()
	}

	var list strings.Builder
	for _, m := range models {
		marker := "  "
		name := m.Name
		if m.Name == current {
			marker = "* "
			name = styleSuccess.Render(name)
		}
		list.WriteString(marker + name)
		if m.Size > 0 {
			list.WriteString(styleSubtitle.Render("  " + humanSize(m.Size)))
		}
		list.WriteString("\n")
	}
	b.WriteString(styleBox.Width(boxWidth).Render(strings.TrimRight(list.String(), "\n")))
	b.WriteString("\n")

	return b.String()
}

func humanSize(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "kMGTPE"[exp])
}
