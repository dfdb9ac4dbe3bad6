package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/reformulate"
)

type fixture struct {
	dir       string
	cfgPath   string
	history   string
	ollama    *httptest.Server
	generates atomic.Int32
	prompts   chan string
}

func newFixture(t *testing.T, response string) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir(), prompts: make(chan string, 8)}
	f.cfgPath = filepath.Join(f.dir, "config.yaml")
	f.history = filepath.Join(f.dir, "data", "history.json")

	f.ollama = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.Write([]byte(`{"models":[{"name":"qwen2.5:3b"},{"name":"llama3.2"}]}`))
		case "/api/generate":
			f.generates.Add(1)
			var body struct {
				Prompt string `json:"prompt"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.prompts <- body.Prompt
			json.NewEncoder(w).Encode(map[string]any{"response": response, "done": true})
		}
	}))
	t.Cleanup(f.ollama.Close)
	return f
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))

	base := []string{"--plain", "--config", f.cfgPath, "--host", f.ollama.URL, "--history-path", f.history, "--log-level", "error"}
	cmd.SetArgs(append(args, base...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRewriteCommand(t *testing.T) {
	f := newFixture(t, "Voici la reformulation:\nBonjour à tous,\nCordialement")

	out, err := f.run(t, "", "rewrite", "-t", "drôle", "-f", "Mail", "salut", "tout", "le", "monde")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour à tous,\nCordialement\n", out)

	prompt := <-f.prompts
	assert.Contains(t, prompt, "Texte à reformuler: salut tout le monde\nTon: Drôle\nFormat: Mail\nLongueur: Court")

	data, err := os.ReadFile(f.history)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"original": "salut tout le monde"`)
}

func TestRewriteCommandJSONAndStdin(t *testing.T) {
	f := newFixture(t, "Cher client,\nMerci de votre confiance.")

	out, err := f.run(t, "merci pour tout\n", "rewrite", "--json", "--no-history")
	require.NoError(t, err)

	var got rewriteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Cher client,\nMerci de votre confiance.", got.Result)
	assert.Equal(t, "Professionnel", got.Tone)
	assert.Equal(t, config.DefaultModel, got.Model)

	_, err = os.Stat(f.history)
	assert.True(t, os.IsNotExist(err), "history written despite --no-history")
}

func TestRewriteCommandBlankInput(t *testing.T) {
	f := newFixture(t, "unused")

	_, err := f.run(t, "   \n", "rewrite")
	assert.ErrorIs(t, err, reformulate.ErrEmptyText)
	assert.Zero(t, f.generates.Load())
}

func TestTranslateCommand(t *testing.T) {
	f := newFixture(t, "  Bonjour  ")

	out, err := f.run(t, "", "translate", "--to", "Français", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour\n", out)

	_, err = os.Stat(f.history)
	assert.True(t, os.IsNotExist(err), "translation recorded in history")
}

func TestModelsCommand(t *testing.T) {
	f := newFixture(t, "")

	out, err := f.run(t, "", "models")
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5:3b\nllama3.2\n", out)
}

func TestHistoryCommand(t *testing.T) {
	f := newFixture(t, "ok")

	for _, text := range []string{"un", "deux", "trois"} {
		_, err := f.run(t, "", "rewrite", text)
		require.NoError(t, err)
	}

	out, err := f.run(t, "", "history", "--json", "--limit", "2")
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "deux", entries[0]["original"])

	_, err = f.run(t, "", "history", "--clear")
	require.NoError(t, err)

	out, err = f.run(t, "", "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestTagsCommandPersists(t *testing.T) {
	f := newFixture(t, "")

	_, err := f.run(t, "", "tags", "add", "tone", "Poétique")
	require.NoError(t, err)

	cfg, err := config.Load(f.cfgPath)
	require.NoError(t, err)
	assert.Contains(t, cfg.Tags.Tones, "Poétique")
	assert.Equal(t, config.DefaultHost, cfg.Ollama.Host, "flag override leaked into the config file")

	_, err = f.run(t, "", "tags", "remove", "tone", "poétique")
	require.NoError(t, err)
	cfg, err = config.Load(f.cfgPath)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Tags.Tones, "Poétique")

	_, err = f.run(t, "", "tags", "add", "colour", "Rouge")
	assert.ErrorIs(t, err, config.ErrUnknownKind)
}

func TestPresetsCommand(t *testing.T) {
	f := newFixture(t, "ok")

	promptFile := filepath.Join(f.dir, "linkedin.txt")
	require.NoError(t, os.WriteFile(promptFile, []byte("Tu écris des posts LinkedIn."), 0644))

	_, err := f.run(t, "", "presets", "add", "LinkedIn", "--file", promptFile, "--description", "Posts")
	require.NoError(t, err)

	out, err := f.run(t, "", "presets")
	require.NoError(t, err)
	assert.Equal(t, "linkedin\tPosts\n", out)

	_, err = f.run(t, "", "rewrite", "--preset", "linkedin", "salut")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(<-f.prompts, "<|im_start|>system\nTu écris des posts LinkedIn.\n"))
}

func TestEnvOverride(t *testing.T) {
	f := newFixture(t, "")
	t.Setenv("REFORMULATOR_OLLAMA_MODEL", "llama3.2")

	out, err := f.run(t, "", "rewrite", "--json", "--no-history", "x")
	require.NoError(t, err)

	var got rewriteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "llama3.2", got.Model)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "reformulator dev\n", out.String())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		silent bool
	}{
		{"success", nil, 0, true},
		{"cancelled", context.Canceled, 130, true},
		{"cancelled wrapped", fmt.Errorf("generate: %w", context.Canceled), 130, true},
		{"failure", errors.New("connection refused"), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.code, exitCode(tt.err, &stderr))
			if tt.silent {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), "connection refused")
			}
		})
	}
}
