// Package config loads the source configuration: which named graphs an
// application knows about, their listed/unlisted classification, and
// the default graph for each classification.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ldmodel/field"
)

// Config is the YAML shape of a source configuration.
type Config struct {
	DefaultSources DefaultSources  `yaml:"default_sources"`
	SourceIndex    map[string]bool `yaml:"source_index"`
}

// DefaultSources names the graphs new data defaults to.
type DefaultSources struct {
	// Listed is the graph new public data is written to.
	Listed string `yaml:"listed"`

	// Unlisted is the graph new private data is written to.
	Unlisted string `yaml:"unlisted"`
}

// DefaultConfig returns an empty configuration with an initialized
// index.
func DefaultConfig() *Config {
	return &Config{
		SourceIndex: make(map[string]bool),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DefaultSources.Listed == "" {
		return fmt.Errorf("default_sources.listed is required")
	}
	if c.DefaultSources.Unlisted == "" {
		return fmt.Errorf("default_sources.unlisted is required")
	}
	if c.DefaultSources.Listed == c.DefaultSources.Unlisted {
		return fmt.Errorf("default_sources.listed and default_sources.unlisted must differ")
	}
	for iri := range c.SourceIndex {
		if iri == "" {
			return fmt.Errorf("source_index contains an empty graph IRI")
		}
	}
	return nil
}

// Merge overlays other onto c: non-empty defaults replace c's, and
// other's index entries are added to c's.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DefaultSources.Listed != "" {
		c.DefaultSources.Listed = other.DefaultSources.Listed
	}
	if other.DefaultSources.Unlisted != "" {
		c.DefaultSources.Unlisted = other.DefaultSources.Unlisted
	}
	if c.SourceIndex == nil {
		c.SourceIndex = make(map[string]bool, len(other.SourceIndex))
	}
	for iri, listed := range other.SourceIndex {
		c.SourceIndex[iri] = listed
	}
}

// ToSourceConfig converts to the read-only form the field layer
// consumes. The default graphs are entered into the index with their
// own classification so that data loaded from them classifies
// correctly even when the file omits them.
func (c *Config) ToSourceConfig() field.SourceConfig {
	index := make(map[string]bool, len(c.SourceIndex)+2)
	for iri, listed := range c.SourceIndex {
		index[iri] = listed
	}
	if _, ok := index[c.DefaultSources.Listed]; !ok {
		index[c.DefaultSources.Listed] = true
	}
	if _, ok := index[c.DefaultSources.Unlisted]; !ok {
		index[c.DefaultSources.Unlisted] = false
	}
	return field.SourceConfig{
		DefaultListed:   c.DefaultSources.Listed,
		DefaultUnlisted: c.DefaultSources.Unlisted,
		Index:           index,
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
