package llm

import (
	"log/slog"

	"github.com/sant0-9/reformulator/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config, logger *slog.Logger) Provider {
	return NewOllamaProvider(cfg.Ollama.Host, cfg.Ollama.Model, cfg.Ollama.Timeout).WithLogger(logger)
}
