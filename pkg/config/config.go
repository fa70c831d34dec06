package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dhctl/pkg/env"
	"dhctl/pkg/paths"
	"dhctl/pkg/validate"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of a dhctl.yaml configuration file.
type Config struct {
	Project      string `yaml:"project"`
	BaseDir      string `yaml:"base-dir"`
	IngestionDir string `yaml:"ingestion-dir"`
	Compose      string `yaml:"compose"`
}

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = "dhctl.yaml"

// Loaded holds the currently loaded configuration (populated after Load).
var Loaded *Config

// Load reads and parses the config file at the given path.
// If the file does not exist and the path is the default, an empty config is returned without error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- config file path is intentionally user-specified via CLI flag
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			Loaded = cfg
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error in %s: %w", path, err)
	}

	Loaded = cfg
	return cfg, nil
}

// Validate checks that all configured values are safe and well-formed.
func (c *Config) Validate() error {
	if c.Project != "" {
		if err := validate.ProjectName(c.Project); err != nil {
			return fmt.Errorf("project: %w", err)
		}
	}
	if c.BaseDir != "" {
		if err := validate.BaseDir(c.BaseDir); err != nil {
			return fmt.Errorf("base-dir: %w", err)
		}
	}
	if c.IngestionDir != "" {
		if err := validate.SubDir(c.IngestionDir); err != nil {
			return fmt.Errorf("ingestion-dir: %w", err)
		}
	}
	switch c.Compose {
	case "", env.FlavourStandalone, env.FlavourPlugin:
	default:
		return fmt.Errorf("compose must be %q or %q, got: %s", env.FlavourStandalone, env.FlavourPlugin, c.Compose)
	}
	return nil
}

// GetProject returns the configured compose project, falling back to default.
func (c *Config) GetProject() string {
	if c != nil && c.Project != "" {
		return c.Project
	}
	return paths.DefaultProject
}

// GetIngestionDir returns the configured ingestion subdirectory, falling back to default.
func (c *Config) GetIngestionDir() string {
	if c != nil && c.IngestionDir != "" {
		return c.IngestionDir
	}
	return paths.DefaultIngestionDir
}

// GetBaseDir returns the configured base directory. Empty means the
// executable's own directory.
func (c *Config) GetBaseDir() string {
	if c != nil {
		return c.BaseDir
	}
	return ""
}

// GetCompose returns the preferred compose flavour, or "" to auto-detect.
func (c *Config) GetCompose() string {
	if c != nil {
		return c.Compose
	}
	return ""
}
