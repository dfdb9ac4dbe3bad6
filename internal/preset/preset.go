// Package preset loads named system prompts stored as markdown files with a
// YAML front matter block.
package preset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const fileName = "PRESET.md"

// Metadata is the front matter, loaded without the body
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Path        string `yaml:"-"`
}

// Preset is a metadata entry plus its system prompt
type Preset struct {
	Metadata
	SystemPrompt string
}

// LoadMetadata reads only the front matter
func LoadMetadata(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var frontmatter strings.Builder
	scanner := bufio.NewScanner(file)
	inFrontmatter := false
	lineCount := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineCount++

		if lineCount == 1 && line == "---" {
			inFrontmatter = true
			continue
		}
		if !inFrontmatter || line == "---" {
			break
		}
		frontmatter.WriteString(line)
		frontmatter.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(frontmatter.String()), &meta); err != nil {
		return nil, errors.Wrapf(err, "parse front matter of %s", path)
	}
	meta.Path = path

	return &meta, nil
}

// LoadFull reads the preset including its body
func LoadFull(meta *Metadata) (*Preset, error) {
	content, err := os.ReadFile(meta.Path)
	if err != nil {
		return nil, err
	}

	return &Preset{Metadata: *meta, SystemPrompt: body(string(content))}, nil
}

// body returns what follows the closing "---" line of the front matter, or
// the whole text when there is no complete front matter block.
func body(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || lines[0] != "---" {
		return strings.TrimSpace(text)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == "---" {
			return strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
	}
	return strings.TrimSpace(text)
}

// Save writes p under dir/<name>/PRESET.md and returns the path.
func Save(dir string, p *Preset) (string, error) {
	name := SanitizeName(p.Name)
	if name == "" {
		return "", errors.Errorf("invalid preset name %q", p.Name)
	}
	if strings.TrimSpace(p.SystemPrompt) == "" {
		return "", errors.New("preset system prompt is empty")
	}

	presetDir := filepath.Join(dir, name)
	if err := os.MkdirAll(presetDir, 0755); err != nil {
		return "", errors.Wrap(err, "create preset directory")
	}

	header, err := yaml.Marshal(Metadata{Name: name, Description: p.Description})
	if err != nil {
		return "", err
	}

	content := fmt.Sprintf("---\n%s---\n\n%s\n", header, strings.TrimSpace(p.SystemPrompt))
	path := filepath.Join(presetDir, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrap(err, "write preset")
	}

	p.Name = name
	p.Path = path
	return path, nil
}

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphens      = regexp.MustCompile(`-+`)
)

// SanitizeName lowercases name and keeps only letters, digits and hyphens.
func SanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	name = invalidChars.ReplaceAllString(name, "")
	name = hyphens.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
