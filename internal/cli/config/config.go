// Package config loads the optional wrapgen project configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the wrapgen configuration.
type Config struct {
	Verbose  bool             `mapstructure:"verbose"`
	Generate GenerateConfig   `mapstructure:"generate"`
	Defaults DefaultsConfig   `mapstructure:"defaults"`
	Plurals  []PluralOverride `mapstructure:"plurals"`
}

// PluralOverride is a custom plural form for one type name. A list of
// pairs rather than a map keeps the type names case-exact.
type PluralOverride struct {
	Singular string `mapstructure:"singular"`
	Plural   string `mapstructure:"plural"`
}

// GenerateConfig controls file emission.
type GenerateConfig struct {
	// Suffix is appended to the snake case resource name to form the
	// generated file name.
	Suffix string `mapstructure:"suffix"`
	// Header is an extra comment line placed under the generated-code
	// marker in every emitted file.
	Header string `mapstructure:"header"`
}

// DefaultsConfig provides fallbacks applied before directive overrides.
type DefaultsConfig struct {
	// Metadata is the metadata type name used when a resource directive
	// does not specify one.
	Metadata string `mapstructure:"metadata"`
}

// Load loads the configuration from wrapgen.yml or wrapgen.yaml in the
// current directory, falling back to defaults when no file exists.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads the configuration from the given directory.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("generate.suffix", "_collection.go")
	v.SetDefault("generate.header", "")
	v.SetDefault("defaults.metadata", "")
	v.SetDefault("verbose", false)

	v.SetConfigName("wrapgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if !strings.HasSuffix(config.Generate.Suffix, ".go") {
		return fmt.Errorf("generate.suffix %q must end in .go", config.Generate.Suffix)
	}
	if strings.ContainsAny(config.Generate.Suffix, "/\\") {
		return fmt.Errorf("generate.suffix %q must not contain path separators", config.Generate.Suffix)
	}
	return nil
}
