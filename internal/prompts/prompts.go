package prompts

import (
	_ "embed"
	"strings"
)

//go:embed system.md
var systemBase string

//go:embed translate.md
var translateBase string

// ChatML segment markers understood by the Ollama generate endpoint
const (
	ImStart = "<|im_start|>"
	ImEnd   = "<|im_end|>"
)

// DefaultSystemPrompt is used when a request carries no system prompt
var DefaultSystemPrompt = strings.TrimSpace(systemBase)

// Request holds everything needed to render a reformulation prompt.
// Tone, Format and Length are free labels.
type Request struct {
	Text         string
	Tone         string
	Format       string
	Length       string
	SystemPrompt string
}

type TranslationRequest struct {
	Text           string
	TargetLanguage string
}

// BuildReformulation renders the system and user segments followed by an open
// assistant segment. The result never ends with a newline.
func BuildReformulation(req Request) string {
	system := req.SystemPrompt
	if strings.TrimSpace(system) == "" {
		system = DefaultSystemPrompt
	}

	var b strings.Builder
	writeSegment(&b, "system", system)
	writeSegment(&b, "user", strings.Join([]string{
		"Texte à reformuler: " + req.Text,
		"Ton: " + req.Tone,
		"Format: " + req.Format,
		"Longueur: " + req.Length,
	}, "\n"))
	b.WriteString(ImStart + "assistant")
	return b.String()
}

// BuildTranslation renders a prompt whose user segment is the raw text only.
func BuildTranslation(req TranslationRequest) string {
	system := strings.ReplaceAll(strings.TrimSpace(translateBase), "{language}", req.TargetLanguage)

	var b strings.Builder
	writeSegment(&b, "system", system)
	writeSegment(&b, "user", req.Text)
	b.WriteString(ImStart + "assistant")
	return b.String()
}

func writeSegment(b *strings.Builder, role, content string) {
	b.WriteString(ImStart)
	b.WriteString(role)
	b.WriteByte('\n')
	b.WriteString(content)
	b.WriteByte('\n')
	b.WriteString(ImEnd)
	b.WriteByte('\n')
}

// Segment returns the content of the first segment with the given role.
func Segment(prompt, role string) (string, bool) {
	open := ImStart + role + "\n"
	start := strings.Index(prompt, open)
	if start < 0 {
		return "", false
	}
	rest := prompt[start+len(open):]
	end := strings.Index(rest, "\n"+ImEnd)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
