// Package config resolves the on-disk locations the tool works with: the
// ~/.dspy directory, the profiles store, the cache root, and the optional
// config.yaml with user-level settings. Environment variables with the
// DSPY_ prefix override file-configured values.
package config
