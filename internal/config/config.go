// Package config loads the command-line tool's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/litematic"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = ".litematic.yaml"

// Backup controls the copy written before a file is overwritten.
type Backup struct {
	Enabled     bool   `yaml:"enabled"`
	Compression string `yaml:"compression"`
}

// Config is the tool's file configuration. Flags override these values.
type Config struct {
	Namespace       string           `yaml:"namespace"`
	VerifyAfterSave bool             `yaml:"verify_after_save"`
	Backup          Backup           `yaml:"backup"`
	Rules           []litematic.Rule `yaml:"rules,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Namespace:       litematic.DefaultNamespace,
		VerifyAfterSave: true,
		Backup: Backup{
			Enabled:     true,
			Compression: "zstd",
		},
	}
}

// Load reads path. A missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the backup codec name and every rule.
func (c *Config) Validate() error {
	if _, err := c.BackupCompression(); err != nil {
		return err
	}
	for i, r := range c.Rules {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("%w: rules[%d] needs both from and to", errs.ErrInvalidRule, i)
		}
	}

	return nil
}

// BackupCompression returns the configured backup codec.
func (c *Config) BackupCompression() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Backup.Compression)
}

// NormalizedRules returns Rules with both names normalized against Namespace.
func (c *Config) NormalizedRules() []litematic.Rule {
	out := make([]litematic.Rule, len(c.Rules))
	for i, r := range c.Rules {
		out[i] = litematic.Rule{
			From: litematic.NormalizeBlockName(r.From, c.Namespace),
			To:   litematic.NormalizeBlockName(r.To, c.Namespace),
		}
	}

	return out
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
