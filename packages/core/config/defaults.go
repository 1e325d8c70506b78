package config

import "slices"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Conjunctions: Conjunctions{
			Positive: []string{"is", "does", "has", "will"},
			Negative: []string{"isNot", "doesNot", "willNot"},
			Neutral:  []string{"and", "be", "have"},
		},
		Verbose: boolPtr(false),
		NoColor: boolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return slices.Equal(c.Conjunctions.Positive, defaults.Conjunctions.Positive) &&
		slices.Equal(c.Conjunctions.Negative, defaults.Conjunctions.Negative) &&
		slices.Equal(c.Conjunctions.Neutral, defaults.Conjunctions.Neutral) &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}
