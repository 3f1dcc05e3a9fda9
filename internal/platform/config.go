package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration read from noted.yaml.
type Config struct {
	// Root is the notes root. Relative paths are resolved against the
	// directory of the config file.
	Root string `yaml:"root"`
	// MaxNotes caps enumeration; 0 is the default cap, negative is uncapped.
	MaxNotes int    `yaml:"max_notes"`
	Editor   string `yaml:"editor"`
	LogLevel string `yaml:"log_level"`
	ReadOnly bool   `yaml:"read_only"`

	// dir is where the file was loaded from; empty for defaults.
	dir string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Root: DefaultRoot, LogLevel: "info"}
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = DefaultRoot
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// RootPath returns the notes root, resolved against the config file's directory.
func (c Config) RootPath() string {
	if filepath.IsAbs(c.Root) || c.dir == "" {
		return c.Root
	}
	return filepath.Join(c.dir, c.Root)
}

// Level parses LogLevel, defaulting to Info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Options converts the file configuration into functional options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxNotes(c.MaxNotes),
		WithReadOnly(c.ReadOnly),
	}
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
