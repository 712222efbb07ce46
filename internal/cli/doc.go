// Package cli implements the dspy-profiles command-line interface: cobra
// commands for creating, listing, inspecting, diffing, validating, and
// deleting profiles, plus `run` for executing a child process with a
// profile active. All profile semantics live in the profiles package; the
// commands here are argument parsing and presentation.
package cli
