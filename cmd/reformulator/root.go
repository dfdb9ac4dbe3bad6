package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/history"
	"github.com/sant0-9/reformulator/internal/llm"
	"github.com/sant0-9/reformulator/internal/logger"
	"github.com/sant0-9/reformulator/internal/metrics"
	"github.com/sant0-9/reformulator/internal/preset"
	"github.com/sant0-9/reformulator/internal/reformulate"
	"github.com/sant0-9/reformulator/internal/tui"
)

// cli carries the state shared by every subcommand once the persistent
// pre-run has loaded the configuration.
type cli struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgPath string
	log     *slog.Logger
	plain   bool
}

// flag name -> config key
var boundFlags = map[string]string{
	"host":           "ollama.host",
	"model":          "ollama.model",
	"timeout":        "ollama.timeout",
	"history-path":   "history.path",
	"history-driver": "history.driver",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           "reformulator",
		Short:         "Rewrite text with a local Ollama model, choosing tone, format and length",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Try to load .env file from current directory (ignore error if file doesn't exist)
			_ = godotenv.Load()
			return c.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "config file (default ~/.config/reformulator/config.yaml)")
	flags.String("host", "", "Ollama base URL (default "+config.DefaultHost+")")
	flags.String("model", "", "model name (default "+config.DefaultModel+")")
	flags.Duration("timeout", 0, "timeout of a generate call, 0 waits forever")
	flags.String("history-path", "", "history file path")
	flags.String("history-driver", "", "history backend: json or sqlite")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.BoolVar(&c.plain, "plain", false, "no spinner and no styling")

	for name, key := range boundFlags {
		if err := c.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	c.v.SetEnvPrefix("reformulator")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		newRewriteCmd(c),
		newTranslateCmd(c),
		newModelsCmd(c),
		newHistoryCmd(c),
		newTagsCmd(c),
		newPresetsCmd(c),
		newServeCmd(c),
		newVersionCmd(),
	)

	return root
}

func (c *cli) load() error {
	if c.cfgPath == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		c.cfgPath = p
	}

	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	c.cfg = cfg

	c.log = logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	c.log.Debug("config loaded", "path", c.cfgPath, "host", cfg.Ollama.Host, "model", cfg.Ollama.Model)
	return nil
}

// applyOverrides layers flags and REFORMULATOR_* variables over the file.
func (c *cli) applyOverrides(cfg *config.Config) {
	v := c.v
	if v.IsSet("ollama.host") {
		cfg.Ollama.Host = strings.TrimRight(v.GetString("ollama.host"), "/")
	}
	if v.IsSet("ollama.model") {
		cfg.Ollama.Model = v.GetString("ollama.model")
	}
	if v.IsSet("ollama.timeout") {
		cfg.Ollama.Timeout = v.GetDuration("ollama.timeout")
	}
	if v.IsSet("prompt.system") {
		cfg.Prompt.System = v.GetString("prompt.system")
	}
	if v.IsSet("prompt.preset") {
		cfg.Prompt.Preset = v.GetString("prompt.preset")
	}
	if v.IsSet("history.driver") {
		cfg.History.Driver = v.GetString("history.driver")
	}
	if v.IsSet("history.path") {
		cfg.History.Path = v.GetString("history.path")
	}
	if v.IsSet("tags.strict") {
		cfg.Tags.Strict = v.GetBool("tags.strict")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.rate_limit") {
		cfg.Server.RateLimit = v.GetFloat64("server.rate_limit")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.format") {
		cfg.Log.Format = v.GetString("log.format")
	}
}

// systemPrompt resolves the active preset, falling back to prompt.system.
func (c *cli) systemPrompt() (string, error) {
	name := strings.TrimSpace(c.cfg.Prompt.Preset)
	if name == "" {
		return c.cfg.Prompt.System, nil
	}

	idx, err := preset.NewIndex(c.presetDir())
	if err != nil {
		return "", err
	}
	p, err := idx.Load(name)
	if err != nil {
		return "", err
	}
	return p.SystemPrompt, nil
}

// presetDir sits next to the config file.
func (c *cli) presetDir() string {
	return filepath.Join(filepath.Dir(c.cfgPath), "presets")
}

// service builds the reformulation service. The returned store is nil when
// withHistory is false; callers close it.
func (c *cli) service(withHistory bool, exporter *metrics.Exporter) (*reformulate.Service, history.Store, error) {
	system, err := c.systemPrompt()
	if err != nil {
		return nil, nil, err
	}

	var store history.Store
	if withHistory {
		store, err = history.Open(c.cfg.History)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open history")
		}
	}

	provider := llm.NewProvider(c.cfg, logger.Named("ollama"))

	opts := reformulate.Options{
		Model:        c.cfg.Ollama.Model,
		SystemPrompt: system,
		Tags:         c.cfg.Tags,
		History:      store,
		Logger:       logger.Named("reformulate"),
	}
	if exporter != nil {
		opts.Metrics = exporter
	}

	return reformulate.NewService(provider, opts), store, nil
}

func (c *cli) interactive() bool {
	return !c.plain && tui.Interactive(os.Stderr)
}

func (c *cli) styled() bool {
	return !c.plain && tui.Interactive(os.Stdout)
}
