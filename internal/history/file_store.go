package history

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps the history as a pretty-printed JSON array in one file.
type FileStore struct {
	path  string
	limit int
	mu    sync.Mutex
}

// NewFileStore creates a store backed by path. The file and its directory are
// created on the first append.
func NewFileStore(path string, limit int) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path must be provided")
	}
	return &FileStore{path: path, limit: limit}, nil
}

func (s *FileStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	return s.writeEntries(tail(entries, s.limit))
}

func (s *FileStore) List(_ context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return nil, err
	}
	return tail(entries, limit), nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove history file")
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) readEntries() ([]Entry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, errors.Wrap(err, "open history file")
	}
	defer file.Close()

	var entries []Entry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return []Entry{}, nil
		}
		return nil, errors.Wrap(err, "decode history")
	}
	return entries, nil
}

func (s *FileStore) writeEntries(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create history directory")
	}

	tmp, err := os.CreateTemp(dir, "history-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp history file")
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "encode history")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "close history temp file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "persist history")
	}

	return nil
}

var _ Store = (*FileStore)(nil)
