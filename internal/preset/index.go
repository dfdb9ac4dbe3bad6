package preset

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// ErrPresetNotFound is returned when no preset carries the requested name.
var ErrPresetNotFound = errors.New("preset not found")

// Index manages all available presets
type Index struct {
	presets map[string]*Metadata
	dir     string
}

// NewIndex scans dir for <name>/PRESET.md files. A missing directory yields
// an empty index.
func NewIndex(dir string) (*Index, error) {
	idx := &Index{
		presets: make(map[string]*Metadata),
		dir:     dir,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return idx, nil
		}
		return nil, errors.Wrap(err, "read presets directory")
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name(), fileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		meta, err := LoadMetadata(path)
		if err != nil {
			continue // Skip invalid presets
		}

		// Use directory name as fallback if no name in frontmatter
		if meta.Name == "" {
			meta.Name = entry.Name()
		}

		idx.presets[meta.Name] = meta
	}

	return idx, nil
}

// Get returns metadata by name
func (idx *Index) Get(name string) *Metadata {
	if idx == nil {
		return nil
	}
	if meta, ok := idx.presets[name]; ok {
		return meta
	}
	return idx.presets[SanitizeName(name)]
}

// Load returns the full preset called name
func (idx *Index) Load(name string) (*Preset, error) {
	meta := idx.Get(name)
	if meta == nil {
		return nil, errors.Wrapf(ErrPresetNotFound, "%q", name)
	}
	return LoadFull(meta)
}

// All returns every preset's metadata sorted by name
func (idx *Index) All() []*Metadata {
	if idx == nil {
		return nil
	}
	result := make([]*Metadata, 0, len(idx.presets))
	for _, meta := range idx.presets {
		result = append(result, meta)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Dir returns the presets directory path
func (idx *Index) Dir() string {
	return idx.dir
}

// Count returns the number of loaded presets
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	return len(idx.presets)
}
