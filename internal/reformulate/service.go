// Package reformulate ties prompt building, inference, cleaning and history
// together.
package reformulate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sant0-9/reformulator/internal/cleaner"
	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/history"
	"github.com/sant0-9/reformulator/internal/llm"
	"github.com/sant0-9/reformulator/internal/metrics"
	"github.com/sant0-9/reformulator/internal/prompts"
)

// ErrEmptyText is returned when the input is blank after trimming. No request
// reaches the provider in that case.
var ErrEmptyText = errors.New("text to reformulate is empty")

const (
	KindRewrite   = "rewrite"
	KindTranslate = "translate"
)

// Service generates reformulations and translations
type Service struct {
	provider     llm.Provider
	model        string
	systemPrompt string
	tags         config.TagsConfig
	history      history.Store
	metrics      metrics.Recorder
	logger       *slog.Logger
	now          func() time.Time
}

// Options configures a Service. Zero values fall back to the built-in
// defaults and a nil History disables recording.
type Options struct {
	Model        string
	SystemPrompt string
	Tags         config.TagsConfig
	History      history.Store
	Metrics      metrics.Recorder
	Logger       *slog.Logger
}

// NewService creates a new service
func NewService(provider llm.Provider, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tags := opts.Tags
	if len(tags.Tones) == 0 && len(tags.Formats) == 0 && len(tags.Lengths) == 0 && len(tags.Languages) == 0 {
		tags = config.DefaultConfig().Tags
	}
	return &Service{
		provider:     provider,
		model:        opts.Model,
		systemPrompt: opts.SystemPrompt,
		tags:         tags,
		history:      opts.History,
		metrics:      opts.Metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Request contains what the user asked for. Blank labels select the first
// configured label of their group.
type Request struct {
	Text   string
	Tone   string
	Format string
	Length string

	// Optional per-call overrides
	Model        string
	SystemPrompt string
}

// Result is a cleaned completion
type Result struct {
	Text       string
	Model      string
	Duration   time.Duration
	Parameters history.Parameters
}

// Rewrite reformulates req.Text. History failures are logged and do not fail
// the call.
func (s *Service) Rewrite(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	params, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	system := req.SystemPrompt
	if strings.TrimSpace(system) == "" {
		system = s.systemPrompt
	}

	prompt := prompts.BuildReformulation(prompts.Request{
		Text:         text,
		Tone:         params.Tone,
		Format:       params.Format,
		Length:       params.Length,
		SystemPrompt: system,
	})

	model := s.modelFor(req.Model)
	raw, took, err := s.generate(ctx, KindRewrite, model, prompt)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Text:       cleaner.Clean(raw),
		Model:      model,
		Duration:   took,
		Parameters: params,
	}
	s.record(ctx, text, result)

	return result, nil
}

// Translate translates text into language. Translations are not recorded.
func (s *Service) Translate(ctx context.Context, text, language, model string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	language, err := s.tags.Set(config.KindLanguage).Resolve(language)
	if err != nil {
		return nil, err
	}

	model = s.modelFor(model)
	raw, took, err := s.generate(ctx, KindTranslate, model, prompts.BuildTranslation(prompts.TranslationRequest{
		Text:           text,
		TargetLanguage: language,
	}))
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:     cleaner.CleanTranslation(raw),
		Model:    model,
		Duration: took,
	}, nil
}

// Models lists the models the provider can serve
func (s *Service) Models(ctx context.Context) []llm.ModelDescriptor {
	return s.provider.ListModels(ctx)
}

// Ping checks that the inference server answers
func (s *Service) Ping(ctx context.Context) error {
	return s.provider.Ping(ctx)
}

// History returns the newest limit entries, oldest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.history == nil {
		return []history.Entry{}, nil
	}
	return s.history.List(ctx, limit)
}

// Tags returns the configured label groups.
func (s *Service) Tags() config.TagsConfig {
	return s.tags
}

func (s *Service) resolve(req Request) (history.Parameters, error) {
	tone, err := s.tags.Set(config.KindTone).Resolve(req.Tone)
	if err != nil {
		return history.Parameters{}, err
	}
	format, err := s.tags.Set(config.KindFormat).Resolve(req.Format)
	if err != nil {
		return history.Parameters{}, err
	}
	length, err := s.tags.Set(config.KindLength).Resolve(req.Length)
	if err != nil {
		return history.Parameters{}, err
	}
	return history.Parameters{Tone: tone, Format: format, Length: length}, nil
}

func (s *Service) modelFor(override string) string {
	if m := strings.TrimSpace(override); m != "" {
		return m
	}
	if s.model != "" {
		return s.model
	}
	return config.DefaultModel
}

func (s *Service) generate(ctx context.Context, kind, model, prompt string) (string, time.Duration, error) {
	start := s.now()
	raw, err := s.provider.Generate(ctx, model, prompt)
	took := s.now().Sub(start)

	if s.metrics != nil {
		s.metrics.ObserveGenerate(kind, model, took, err)
	}
	if err != nil {
		s.logger.Error("generate failed", "kind", kind, "model", model, "error", err)
		return "", took, err
	}

	s.logger.Debug("generate done", "kind", kind, "model", model, "duration", took)
	return raw, took, nil
}

func (s *Service) record(ctx context.Context, original string, result *Result) {
	if s.history == nil {
		return
	}

	entry := history.NewEntry(original, result.Text, result.Parameters, s.now())
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn("history write failed", "error", err)
		if s.metrics != nil {
			s.metrics.IncHistoryFailure()
		}
	}
}
