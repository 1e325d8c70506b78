// Package config handles configuration loading and management for verify.
//
// It provides functionality for:
//   - Loading configuration from .verify.yaml or .verify.yml files
//   - Default configuration values, including the conjunction vocabulary
//   - Merging project configuration over the defaults
//   - Validating conjunction names
package config
