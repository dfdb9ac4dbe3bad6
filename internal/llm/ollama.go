package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultHost = "http://localhost:11434"

type OllamaProvider struct {
	host       string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOllamaProvider creates a client for the server at host. A zero timeout
// leaves generate calls unbounded apart from the caller's context.
func NewOllamaProvider(host, model string, timeout time.Duration) *OllamaProvider {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		host = defaultHost
	}
	return &OllamaProvider{
		host:  host,
		model: model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: slog.Default().With("component", "ollama"),
	}
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Host() string {
	return o.host
}

func (o *OllamaProvider) Model() string {
	return o.model
}

// WithLogger replaces the logger used for soft failures.
func (o *OllamaProvider) WithLogger(logger *slog.Logger) *OllamaProvider {
	if logger != nil {
		o.logger = logger
	}
	return o
}

func (o *OllamaProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", o.host+"/api/tags", nil)
	if err != nil {
		return err
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", o.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	return nil
}

type ollamaTagsResponse struct {
	Models []ModelDescriptor `json:"models"`
}

func (o *OllamaProvider) ListModels(ctx context.Context) []ModelDescriptor {
	req, err := http.NewRequestWithContext(ctx, "GET", o.host+"/api/tags", nil)
	if err != nil {
		o.logger.Warn("build model list request", "error", err)
		return []ModelDescriptor{}
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.logger.Warn("list models", "host", o.host, "error", err)
		return []ModelDescriptor{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		o.logger.Warn("list models", "host", o.host, "status", resp.StatusCode)
		return []ModelDescriptor{}
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		o.logger.Warn("decode model list", "host", o.host, "error", err)
		return []ModelDescriptor{}
	}

	models := make([]ModelDescriptor, 0, len(tags.Models))
	for _, m := range tags.Models {
		if m.Name == "" {
			continue
		}
		models = append(models, m)
	}
	return models
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func (o *OllamaProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = o.model
	}

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("ollama error: %s", out.Error)
	}

	return out.Response, nil
}

// StatusError reports a non-200 answer from the inference server.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ollama error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("ollama error (status %d): %s", e.StatusCode, e.Body)
}

var _ Provider = (*OllamaProvider)(nil)
