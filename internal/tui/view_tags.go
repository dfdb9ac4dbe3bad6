package tui

import (
	"strings"

	"github.com/sant0-9/reformulator/internal/config"
)

// RenderTags lists every tag group. The default label comes first and is
// highlighted.
func RenderTags(tags config.TagsConfig) string {
	var b strings.Builder

	for _, kind := range config.Kinds {
		set := tags.Set(kind)
		b.WriteString(styleLabel.Render(string(kind)))
		b.WriteString("\n")

		for i, label := range set.Labels {
			if i == 0 {
				b.WriteString("  " + styleSuccess.Render(label) + styleSubtitle.Render(" (default)"))
			} else {
				b.WriteString("  " + label)
			}
			b.WriteString("\n")
		}
	}

	if tags.Strict {
		b.WriteString(styleSubtitle.Render("strict: labels outside these lists are rejected"))
		b.WriteString("\n")
	}

	return b.String()
}
