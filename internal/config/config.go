package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Mode selects how the checker treats a failing child.
type Mode string

const (
	ShortCircuit Mode = "short-circuit"
	CollectAll   Mode = "collect-all"
)

type Check struct {
	Mode         Mode `yaml:"mode" toml:"mode"`
	DetectCycles bool `yaml:"detect_cycles" toml:"detect_cycles"`
}

type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type Config struct {
	Check Check `yaml:"check" toml:"check"`
	Log   Log   `yaml:"log" toml:"log"`
}

// Format is the encoding of a configuration file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

func Default() Config {
	return Config{
		Check: Check{Mode: ShortCircuit},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Config{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(content, format)
}

// Parse decodes content on top of Default and validates the result.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: YAML parse error: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: TOML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported format %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Check.Mode {
	case ShortCircuit, CollectAll:
	default:
		return fmt.Errorf("config: check.mode %q: want %q or %q", c.Check.Mode, ShortCircuit, CollectAll)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q: want \"text\" or \"json\"", c.Log.Format)
	}
	return nil
}

func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level %q: %w", l.Level, err)
	}
	return level, nil
}
