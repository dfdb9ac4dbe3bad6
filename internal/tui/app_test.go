package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/history"
	"github.com/sant0-9/reformulator/internal/llm"
)

func TestAppCompletes(t *testing.T) {
	app := newApp(context.Background(), "Reformulating", "", func(context.Context) (string, error) {
		return "Bonjour", nil
	})

	cmd := app.run()
	msg := cmd()

	model, quit := app.Update(msg)
	if quit == nil {
		t.Fatal("Update(doneMsg) returned no command, want tea.Quit")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Error("Update(doneMsg) did not quit")
	}

	got := model.(*App)
	if got.result != "Bonjour" || got.err != nil {
		t.Errorf("result = %q, err = %v", got.result, got.err)
	}
	if got.View() != "" {
		t.Errorf("View() after completion = %q, want empty", got.View())
	}
}

func TestAppCancelStopsTask(t *testing.T) {
	app := newApp(context.Background(), "Reformulating", "", func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("cancel key returned no command")
	}
	if !errors.Is(app.err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", app.err)
	}

	// The late task result must not overwrite the cancellation.
	app.Update(app.run()())
	if !errors.Is(app.err, context.Canceled) {
		t.Errorf("err after late result = %v, want context.Canceled", app.err)
	}
}

func TestAppViewWhileRunning(t *testing.T) {
	app := newApp(context.Background(), "Reformulating", "Professionnel / Mail / Court", nil)
	view := app.View()
	for _, want := range []string{"Reformulating", "Professionnel / Mail / Court", "[Esc] Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
}

func TestRunPlain(t *testing.T) {
	out, err := RunPlain(context.Background(), func(context.Context) (string, error) { return "ok", nil })
	if err != nil || out != "ok" {
		t.Errorf("RunPlain() = %q, %v", out, err)
	}
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("ollama request failed: dial tcp 127.0.0.1:11434: connect: connection refused"), "ollama serve"},
		{errors.New("ollama error (status 404): model 'x' not found"), "reformulator models"},
		{errors.New("ollama request failed: context deadline exceeded"), "ollama.timeout"},
		{errors.New("text to reformulate is empty"), "--file"},
		{errors.New(`tone "Lyrique": unknown tag`), "tags list"},
	}
	for _, tt := range tests {
		got := strings.Join(Suggestions(tt.err), "\n")
		if !strings.Contains(got, tt.want) {
			t.Errorf("Suggestions(%q) = %q, want mention of %q", tt.err, got, tt.want)
		}
	}

	if got := Suggestions(nil); got != nil {
		t.Errorf("Suggestions(nil) = %v", got)
	}
}

func TestRenderError(t *testing.T) {
	out := RenderError(errors.New("connection refused"))
	if !strings.Contains(out, "connection refused") || !strings.Contains(out, "Suggestions:") {
		t.Errorf("RenderError() = %q", out)
	}
}

func TestRenderHistory(t *testing.T) {
	if out := RenderHistory(nil); !strings.Contains(out, "No history yet") {
		t.Errorf("RenderHistory(nil) = %q", out)
	}

	out := RenderHistory([]history.Entry{{
		Timestamp:    "2024-05-01T09:00:00Z",
		Original:     "salut\ntout le monde",
		Reformulated: "Bonjour à tous",
		Parameters:   history.Parameters{Tone: "Drôle", Format: "Mail", Length: "Court"},
	}})
	for _, want := range []string{"#1", "2024-05-01T09:00:00Z", "Drôle / Mail / Court", "> salut tout le monde", "Bonjour à tous"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHistory() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderModelsMarksCurrent(t *testing.T) {
	out := RenderModels([]llm.ModelDescriptor{
		{Name: "qwen2.5:3b", Size: 1929912432},
		{Name: "llama3.2"},
	}, "qwen2.5:3b")

	if !strings.Contains(out, "* qwen2.5:3b") {
		t.Errorf("current model not marked:\n%s", out)
	}
	if !strings.Contains(out, "1.9 GB") {
		t.Errorf("size not rendered:\n%s", out)
	}
}

func TestRenderTags(t *testing.T) {
	out := RenderTags(config.DefaultConfig().Tags)
	for _, want := range []string{"tone", "Professionnel (default)", "Article de blog", "language"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTags() missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"court", 10, "court"},
		{"déjà vu encore", 8, "déjà ..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestContextWarning(t *testing.T) {
	if w := ContextWarning("qwen2.5:3b", "court"); w != "" {
		t.Errorf("ContextWarning(short) = %q", w)
	}
	long := strings.Repeat("mot ", 5000)
	if w := ContextWarning("unknown-model", long); !strings.Contains(w, "4096") {
		t.Errorf("ContextWarning(long) = %q", w)
	}
}
