// Package store persists named profiles in a single TOML file
// (~/.dspy/profiles.toml by default). It exposes a flat CRUD surface over
// the file: load everything, save everything, and get/set/delete a single
// profile by name. Nested tables are preserved as-is, so profiles can carry
// arbitrary free-form sections alongside the well-known lm/rm/settings ones.
package store
