package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CooperTran2196/scenetree/internal/scene"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory
const AppName = "scenetree"

// DefaultScenesDir is where `list` looks for scenes when nothing else is set
const DefaultScenesDir = "Assets/GAME/Scenes"

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment overrides
const (
	EnvScenesDir = "SCENETREE_SCENES_DIR"
	EnvOutput    = "SCENETREE_OUTPUT"
)

// Config holds CLI configuration
type Config struct {
	ScenesDir    string       `yaml:"scenes_dir,omitempty"`
	OutputFormat string       `yaml:"output_format,omitempty"` // text, json, yaml
	Extractor    string       `yaml:"extractor,omitempty"`     // scan, yaml
	Color        string       `yaml:"color,omitempty"`         // auto, always, never
	Glyphs       scene.Glyphs `yaml:"glyphs,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ScenesDir:    DefaultScenesDir,
		OutputFormat: "text",
		Extractor:    scene.ExtractorScan,
		Color:        ColorAuto,
		Glyphs:       scene.DefaultGlyphs,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads config from the given path. A missing file yields the defaults;
// fields left empty in the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if s := strings.TrimSpace(o.ScenesDir); s != "" {
		c.ScenesDir = s
	}
	if s := strings.TrimSpace(o.OutputFormat); s != "" {
		c.OutputFormat = s
	}
	if s := strings.TrimSpace(o.Extractor); s != "" {
		c.Extractor = s
	}
	if s := strings.TrimSpace(o.Color); s != "" {
		c.Color = s
	}
	if o.Glyphs.Active != "" {
		c.Glyphs.Active = o.Glyphs.Active
	}
	if o.Glyphs.Inactive != "" {
		c.Glyphs.Inactive = o.Glyphs.Inactive
	}
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvScenesDir)); v != "" {
		c.ScenesDir = v
	}
	if v := strings.TrimSpace(getenv(EnvOutput)); v != "" {
		c.OutputFormat = v
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode: %q (valid options: auto, always, never)", c.Color)
	}
	if _, err := scene.ParseExtractor(c.Extractor); err != nil {
		return err
	}
	return nil
}
