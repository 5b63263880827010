// Package resolveconfig loads the configuration of the javaresolve command.
package resolveconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the complete javaresolve configuration.
type Config struct {
	// Root is the directory that relative patterns are expanded against.
	Root      string          `yaml:"root"`
	JDK       IndexConfig     `yaml:"jdk"`
	Classpath IndexConfig     `yaml:"classpath"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Log       LogConfig       `yaml:"log"`
	// Parallelism bounds concurrent jar and source reads (0 = GOMAXPROCS).
	Parallelism int `yaml:"parallelism"`
}

// IndexConfig lists the entries of one type index.  Each entry is a glob
// matching jar files or JSON/YAML index specs.  Entries earlier in the list
// shadow later ones.
type IndexConfig struct {
	Entries []string `yaml:"entries"`
}

// WorkspaceConfig selects the Java source files of the workspace.
type WorkspaceConfig struct {
	Sources []string `yaml:"sources"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with defaults.  The JDK has no default and
// must be configured.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Workspace: WorkspaceConfig{
			Sources: []string{"**/*.java"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.JDK.Entries) == 0 {
		return fmt.Errorf("jdk.entries is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative")
	}
	return nil
}

// LoadFile loads configuration from a YAML file on top of the defaults.  A
// relative root is taken relative to the directory of the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if !filepath.IsAbs(config.Root) {
		config.Root = filepath.Join(filepath.Dir(path), config.Root)
	}
	return config, nil
}

// SaveFile writes the configuration as YAML.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge overlays the non-zero values of other, typically from command line
// flags.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Root != "" {
		c.Root = other.Root
	}
	if len(other.JDK.Entries) > 0 {
		c.JDK.Entries = other.JDK.Entries
	}
	if len(other.Classpath.Entries) > 0 {
		c.Classpath.Entries = other.Classpath.Entries
	}
	if len(other.Workspace.Sources) > 0 {
		c.Workspace.Sources = other.Workspace.Sources
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
	if other.Parallelism != 0 {
		c.Parallelism = other.Parallelism
	}
}

// Level returns the configured log level, or info when it is invalid.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
