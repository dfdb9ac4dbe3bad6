package tui

import (
	"strings"
)

// RenderError formats err with the suggestions that match it.
func RenderError(err error) string {
	var b strings.Builder

	b.WriteString(styleError.Render("Something went wrong"))
	b.WriteString("\n")

	errMsg := "Unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	b.WriteString(styleErrorBox.Render(errMsg))
	b.WriteString("\n")

	if suggestions := Suggestions(err); len(suggestions) > 0 {
		b.WriteString(styleBox.Width(boxWidth).Render("Suggestions:\n" + strings.Join(suggestions, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

// Suggestions returns hints matching the error text.
func Suggestions(err error) []string {
	if err == nil {
		return nil
	}

	var suggestions []string
	errLower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errLower, "empty"):
		suggestions = append(suggestions, "Pass the text as an argument, with --file, or on stdin")
	case strings.Contains(errLower, "unknown tag"):
		suggestions = append(suggestions, "List the allowed labels: reformulator tags list")
		suggestions = append(suggestions, "Or disable tags.strict in the config file")
	case strings.Contains(errLower, "refused") || strings.Contains(errLower, "connect"):
		suggestions = append(suggestions, "Make sure Ollama is running: ollama serve")
		suggestions = append(suggestions, "Or point --host at the right server")
	case strings.Contains(errLower, "deadline") || strings.Contains(errLower, "timeout"):
		suggestions = append(suggestions, "Raise ollama.timeout in the config file")
		suggestions = append(suggestions, "Or try a smaller model with --model")
	case strings.Contains(errLower, "not found") || strings.Contains(errLower, "status 404"):
		suggestions = append(suggestions, "List installed models: reformulator models")
		suggestions = append(suggestions, "Pull the model first: ollama pull <model>")
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429"):
		suggestions = append(suggestions, "Wait a moment and try again")
	case strings.Contains(errLower, "ollama"):
		suggestions = append(suggestions, "Check the Ollama logs: the server rejected the request")
	}

	return suggestions
}
