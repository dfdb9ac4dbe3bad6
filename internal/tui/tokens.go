package tui

import (
	"fmt"
	"strings"
)

// estimateTokens returns approximate token count (~4 chars per token)
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// contextLimit returns the default context window Ollama runs a model family
// with.
func contextLimit(model string) int {
	model = strings.ToLower(model)

	switch {
	case strings.Contains(model, "qwen2.5"), strings.Contains(model, "qwen3"):
		return 32768
	case strings.Contains(model, "llama3.1"), strings.Contains(model, "llama3.2"):
		return 131072
	case strings.Contains(model, "llama3"):
		return 8192
	case strings.Contains(model, "mistral"), strings.Contains(model, "mixtral"):
		return 32768
	case strings.Contains(model, "gemma"):
		return 8192
	default:
		return 4096
	}
}

// ContextWarning returns a notice when text likely overflows the model
// context, or "" when it fits.
func ContextWarning(model, text string) string {
	tokens := estimateTokens(text)
	limit := contextLimit(model)
	if tokens*10 < limit*9 {
		return ""
	}
	return styleError.Render("warning: ") +
		styleSubtitle.Render(fmt.Sprintf("input is about %d tokens, close to the %d token context of %s", tokens, limit, model))
}
