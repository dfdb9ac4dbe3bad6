package tui

import (
	"fmt"
	"strings"

	"github.com/sant0-9/reformulator/internal/preset"
)

func RenderPresets(idx *preset.Index, active string) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Available presets"))
	b.WriteString("\n")

	if idx.Count() == 0 {
		b.WriteString(styleBox.Width(boxWidth).Foreground(styleSubtitle.GetForeground()).Render(
			fmt.Sprintf("No presets installed.\n\nCreate presets in: %s\n\nEach preset is a folder with PRESET.md", idx.Dir())))
		b.WriteString("\n")
		return b.String()
	}

	var list strings.Builder
	for _, meta := range idx.All() {
		name := meta.Name
		if name == active {
			name = styleSuccess.Render(name + " (active)")
		}
		list.WriteString(name + "\n")
		if meta.Description != "" {
			list.WriteString(fmt.Sprintf("  %s\n", truncate(meta.Description, 60)))
		}
		list.WriteString("\n")
	}

	b.WriteString(styleBox.Width(boxWidth).Render(strings.TrimSpace(list.String())))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render("Use --preset <name> or set prompt.preset in the config file"))
	b.WriteString("\n")

	return b.String()
}
