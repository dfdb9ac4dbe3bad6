package llm

import (
	"context"
	"time"
)

// Provider is the interface to the inference server
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends a raw prompt and returns the whole completion
	Generate(ctx context.Context, model, prompt string) (string, error)

	// ListModels returns the models the server can run. Failures yield an
	// empty slice: the listing only feeds selection lists.
	ListModels(ctx context.Context) []ModelDescriptor

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// ModelDescriptor describes one installed model
type ModelDescriptor struct {
	Name       string     `json:"name"`
	Size       int64      `json:"size,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// ModelNames flattens descriptors into their names
func ModelNames(models []ModelDescriptor) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}
