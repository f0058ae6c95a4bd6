package colorscript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDirName   = "png-colorscript"
	configFileName  = "config.yaml"
	defaultImageDir = "pngs"
)

// Config is the persisted configuration stored in config.yaml
type Config struct {
	// ImagesDir holds the candidate images. Relative paths are relative to the config directory.
	ImagesDir string `yaml:"images_dir"`
	// Extensions lists the file types to scan, in priority order
	Extensions []string `yaml:"extensions,omitempty"`
	// AlphaCutoff overrides the default transparency threshold when set
	AlphaCutoff *uint8 `yaml:"alpha_cutoff,omitempty"`

	dir string
}

// DefaultConfigDir returns the user config directory (~/.config/png-colorscript on Linux)
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "."+configDirName)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, configDirName)
}

// Default returns the configuration written on first run
func Default(dir string) *Config {
	return &Config{
		ImagesDir:  defaultImageDir,
		Extensions: append([]string(nil), DefaultExtensions...),
		dir:        dir,
	}
}

// ConfigFile returns the path of config.yaml inside dir
func ConfigFile(dir string) string {
	return filepath.Join(dir, configFileName)
}

// Load reads config.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(ConfigFile(dir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile(dir), err)
	}
	if strings.TrimSpace(cfg.ImagesDir) == "" {
		cfg.ImagesDir = defaultImageDir
	}
	return cfg, nil
}

// Save writes the configuration to config.yaml inside dir
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigFile(dir), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.dir = dir
	return nil
}

// Bootstrap loads the configuration in dir, creating the directory, the images
// directory and config.yaml when dir does not exist yet. created reports whether
// this was a first run.
func Bootstrap(dir string) (cfg *Config, created bool, err error) {
	_, err = os.Stat(dir)
	switch {
	case err == nil:
		cfg, err = Load(dir)
		return cfg, false, err
	case !errors.Is(err, os.ErrNotExist):
		return nil, false, fmt.Errorf("failed to stat config dir: %w", err)
	}

	cfg = Default(dir)
	if err := cfg.Save(dir); err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(cfg.ImagesPath(), 0o755); err != nil {
		return nil, false, fmt.Errorf("failed to create images dir: %w", err)
	}
	return cfg, true, nil
}

// ImagesPath returns the absolute images directory, expanding ~/ and resolving
// relative paths against the config directory
func (c *Config) ImagesPath() string {
	path := c.ImagesDir
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}
	return filepath.Clean(path)
}

// Exts returns the configured extensions, or DefaultExtensions
func (c *Config) Exts() []string {
	if len(c.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Extensions
}

// RenderOptions returns the render options implied by the configuration
func (c *Config) RenderOptions() RenderOptions {
	opts := DefaultRenderOptions()
	if c.AlphaCutoff != nil {
		opts.AlphaCutoff = *c.AlphaCutoff
	}
	return opts
}
