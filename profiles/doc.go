// Package profiles resolves named, inheritable configuration profiles and
// applies them to process-wide settings for a bounded scope.
//
// A profile is a named TOML table with optional lm, rm, and settings
// sections plus a single-inheritance "extends" link. Resolve walks the
// extends chain and deep-merges it parent-to-child into one configuration.
// Activate applies a resolved profile to the settings object for the
// dynamic extent of a scope, carrying the active profile in the returned
// context.Context so concurrent goroutines never observe each other's
// activation, and restoring the prior state when the release func runs.
// LM hands out memoized language-model handles keyed by profile name and
// override set.
package profiles
