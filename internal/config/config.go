package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost         = "http://localhost:11434"
	DefaultModel        = "qwen2.5:3b"
	DefaultHistoryPath  = "data/history.json"
	DefaultHistoryLimit = 100
	DefaultServerAddr   = ":8080"
)

type Config struct {
	Ollama  OllamaConfig  `yaml:"ollama"`
	Prompt  PromptConfig  `yaml:"prompt"`
	Tags    TagsConfig    `yaml:"tags"`
	History HistoryConfig `yaml:"history"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type OllamaConfig struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
	// Zero means the generate call may block indefinitely.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

type PromptConfig struct {
	// Empty uses the built-in system prompt.
	System string `yaml:"system,omitempty"`
	Preset string `yaml:"preset,omitempty"`
}

type HistoryConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Limit  int    `yaml:"limit"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Requests per second allowed per client IP, 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "reformulator"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML file at path. An empty path resolves to ConfigPath and a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) applyDefaults() {
	c.Ollama.Host = strings.TrimRight(strings.TrimSpace(c.Ollama.Host), "/")
	if c.Ollama.Host == "" {
		c.Ollama.Host = DefaultHost
	}
	if strings.TrimSpace(c.Ollama.Model) == "" {
		c.Ollama.Model = DefaultModel
	}

	if len(c.Tags.Tones) == 0 {
		c.Tags.Tones = append([]string(nil), DefaultTones...)
	}
	if len(c.Tags.Formats) == 0 {
		c.Tags.Formats = append([]string(nil), DefaultFormats...)
	}
	if len(c.Tags.Lengths) == 0 {
		c.Tags.Lengths = append([]string(nil), DefaultLengths...)
	}
	if len(c.Tags.Languages) == 0 {
		c.Tags.Languages = append([]string(nil), DefaultLanguages...)
	}

	if c.History.Driver == "" {
		c.History.Driver = "json"
	}
	if c.History.Path == "" {
		if c.History.Driver == "sqlite" {
			c.History.Path = "data/history.db"
		} else {
			c.History.Path = DefaultHistoryPath
		}
	}
	if c.History.Limit <= 0 {
		c.History.Limit = DefaultHistoryLimit
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
