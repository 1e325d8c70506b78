package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/microbus-io/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Conjunctions lists the words that set or keep the modifier of a fluent
// assertion chain.
type Conjunctions struct {
	Positive []string `yaml:"positive,omitempty"`
	Negative []string `yaml:"negative,omitempty"`
	Neutral  []string `yaml:"neutral,omitempty"`
}

// Config represents the verify configuration
type Config struct {
	Conjunctions Conjunctions `yaml:"conjunctions,omitempty"`
	Verbose      *bool        `yaml:"verbose,omitempty"` // log dispatch decisions through t.Logf
	NoColor      *bool        `yaml:"noColor,omitempty"` // CLI output only
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".verify.yaml",
	".verify.yml",
	"verify.yaml",
	"verify.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	path := FindConfig(dir)
	if path == "" {
		// Return defaults if no config file found
		return DefaultConfig(), nil
	}
	return loadConfigFromFile(path)
}

// FindConfig returns the path of the first config file present in dir, or
// an empty string.
func FindConfig(dir string) string {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}
	return ""
}

// loadConfigFromFile loads configuration from a specific file, applying
// it over the defaults
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, errors.New("failed to parse config file '%s'", path, err, ErrInvalidConfig)
	}

	return DefaultConfig().Merge(&fileConfig), nil
}

// Merge merges another config into this one, with other taking precedence.
// A conjunction list in other replaces the whole list in c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Conjunctions.Positive != nil {
		result.Conjunctions.Positive = other.Conjunctions.Positive
	}
	if other.Conjunctions.Negative != nil {
		result.Conjunctions.Negative = other.Conjunctions.Negative
	}
	if other.Conjunctions.Neutral != nil {
		result.Conjunctions.Neutral = other.Conjunctions.Neutral
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}

// Validate checks that every conjunction is a non-empty identifier and
// belongs to a single list.
func (c *Config) Validate() error {
	var problems []string
	seen := make(map[string]string)
	check := func(list string, names []string) {
		for _, name := range names {
			if !isIdentifier(name) {
				problems = append(problems, "invalid "+list+" conjunction '"+name+"'")
				continue
			}
			if prev, ok := seen[name]; ok {
				problems = append(problems, "conjunction '"+name+"' is both "+prev+" and "+list)
				continue
			}
			seen[name] = list
		}
	}
	check("positive", c.Conjunctions.Positive)
	check("negative", c.Conjunctions.Negative)
	check("neutral", c.Conjunctions.Neutral)

	if len(c.Conjunctions.Positive) == 0 {
		problems = append(problems, "at least one positive conjunction is required")
	}
	if len(c.Conjunctions.Negative) == 0 {
		problems = append(problems, "at least one negative conjunction is required")
	}

	if len(problems) > 0 {
		return errors.New("%s", strings.Join(problems, "; "), ErrInvalidConfig)
	}
	return nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(os.WriteFile(path, data, 0644))
}
