// Package history records past reformulations, keeping only the most recent
// entries.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sant0-9/reformulator/internal/config"
)

// ErrUnknownDriver is returned by Open for an unsupported history.driver value.
var ErrUnknownDriver = errors.New("unknown history driver")

// Parameters are the labels a text was reformulated with.
type Parameters struct {
	Tone   string `json:"tone"`
	Format string `json:"format"`
	Length string `json:"length"`
}

// Entry is one recorded reformulation.
type Entry struct {
	ID           string     `json:"id,omitempty"`
	Timestamp    string     `json:"timestamp"`
	Original     string     `json:"original"`
	Reformulated string     `json:"reformulated"`
	Parameters   Parameters `json:"parameters"`
}

// NewEntry stamps a fresh entry with a random ID and now as RFC 3339.
func NewEntry(original, reformulated string, params Parameters, now time.Time) Entry {
	return Entry{
		ID:           uuid.NewString(),
		Timestamp:    now.Format(time.RFC3339),
		Original:     original,
		Reformulated: reformulated,
		Parameters:   params,
	}
}

// Time parses the entry timestamp, returning the zero time when it is invalid.
func (e Entry) Time() time.Time {
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Store is an append-only log capped to a fixed number of entries.
// Entries are always returned oldest first.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	// List returns the newest limit entries, or all of them when limit <= 0.
	List(ctx context.Context, limit int) ([]Entry, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Driver.
func Open(cfg config.HistoryConfig) (Store, error) {
	limit := cfg.Limit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "json":
		return NewFileStore(cfg.Path, limit)
	case "sqlite":
		return NewSQLiteStore(cfg.Path, limit)
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.Driver)
	}
}

func tail(entries []Entry, limit int) []Entry {
	if limit > 0 && len(entries) > limit {
		return append([]Entry{}, entries[len(entries)-limit:]...)
	}
	return append([]Entry{}, entries...)
}
