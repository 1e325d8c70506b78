package cmd

// Exit codes for the verify CLI
const (
	// ExitSuccess indicates the command succeeded
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitConfigError indicates an invalid configuration
	ExitConfigError = 3
)
