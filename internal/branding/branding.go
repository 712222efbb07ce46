// Package branding provides the identity values for the CLI: command name,
// dot-directory under $HOME, and the environment variable prefix shared
// with the dspy ecosystem.
package branding

import "strings"

const (
	cliName     = "dspy-profiles"
	displayName = "dspy-profiles"
	description = "Manage named, inheritable configuration profiles for DSPy"
	homeDir     = ".dspy"
	envPrefix   = "DSPY"
)

// CLIName returns the root command name.
func CLIName() string { return cliName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return displayName }

// Description returns the short product description.
func Description() string { return description }

// HomeDir returns the dot-directory name under $HOME (".dspy", shared with
// the rest of the dspy tooling).
func HomeDir() string { return homeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { return envPrefix }

// EnvVar returns a fully qualified env var name, e.g. EnvVar("PROFILE") →
// "DSPY_PROFILE".
func EnvVar(suffix string) string {
	return envPrefix + "_" + strings.ToUpper(suffix)
}
