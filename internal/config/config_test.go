package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ollama.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Ollama.Host, DefaultHost)
	}
	if cfg.Ollama.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Ollama.Model, DefaultModel)
	}
	if cfg.Ollama.Timeout != 0 {
		t.Errorf("Timeout = %v, want no timeout", cfg.Ollama.Timeout)
	}
	if cfg.History.Limit != 100 {
		t.Errorf("History.Limit = %d, want 100", cfg.History.Limit)
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("History.Path = %q, want %q", cfg.History.Path, DefaultHistoryPath)
	}
	if got := cfg.Tags.Set(KindTone).Default(); got != "Professionnel" {
		t.Errorf("default tone = %q, want Professionnel", got)
	}
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ollama:\n  host: http://gpu-box:11434/\n  timeout: 45s\nhistory:\n  driver: sqlite\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ollama.Host != "http://gpu-box:11434" {
		t.Errorf("Host = %q, want trailing slash trimmed", cfg.Ollama.Host)
	}
	if cfg.Ollama.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Ollama.Timeout)
	}
	if cfg.Ollama.Model != DefaultModel {
		t.Errorf("Model = %q, want default", cfg.Ollama.Model)
	}
	if cfg.History.Path != "data/history.db" {
		t.Errorf("History.Path = %q, want sqlite default", cfg.History.Path)
	}
	if len(cfg.Tags.Formats) != len(DefaultFormats) {
		t.Errorf("Formats = %v, want defaults", cfg.Tags.Formats)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ollama: [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed yaml")
	}
}

func TestSavePersistsTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Tags.Add(KindTone, "Poétique")

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := loaded.Tags.Set(KindTone).Resolve("poétique"); err != nil {
		t.Errorf("saved tone not resolvable: %v", err)
	}
	if got := loaded.Tags.Tones[len(loaded.Tags.Tones)-1]; got != "Poétique" {
		t.Errorf("last tone = %q, want Poétique", got)
	}
}

func TestTagSetResolve(t *testing.T) {
	open := TagSet{Kind: KindTone, Labels: []string{"Professionnel", "Drôle"}}
	strict := TagSet{Kind: KindTone, Labels: []string{"Professionnel", "Drôle"}, Strict: true}

	tests := []struct {
		name    string
		set     TagSet
		value   string
		want    string
		wantErr bool
	}{
		{name: "blank selects default", set: open, value: "  ", want: "Professionnel"},
		{name: "case insensitive match", set: open, value: "drôle", want: "Drôle"},
		{name: "unknown passes through", set: open, value: "Lyrique", want: "Lyrique"},
		{name: "strict rejects unknown", set: strict, value: "Lyrique", wantErr: true},
		{name: "strict accepts known", set: strict, value: "PROFESSIONNEL", want: "Professionnel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.set.Resolve(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTag) {
					t.Fatalf("Resolve() error = %v, want ErrUnknownTag", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagsAddRemove(t *testing.T) {
	tags := TagsConfig{Lengths: []string{"Court"}}

	if !tags.Add(KindLength, "Long") {
		t.Fatal("Add() = false, want true for new label")
	}
	if tags.Add(KindLength, "long") {
		t.Error("Add() = true for duplicate label")
	}
	if err := tags.Remove(KindLength, "Court"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := tags.Remove(KindLength, "Long"); !errors.Is(err, ErrLastTag) {
		t.Errorf("Remove(last) error = %v, want ErrLastTag", err)
	}
	if err := tags.Remove(KindLength, "Moyen"); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("Remove(missing) error = %v, want ErrUnknownTag", err)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" Format "); err != nil || k != KindFormat {
		t.Errorf("ParseKind(Format) = %q, %v", k, err)
	}
	if _, err := ParseKind("colour"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(colour) error = %v, want ErrUnknownKind", err)
	}
}
