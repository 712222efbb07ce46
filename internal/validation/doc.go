// Package validation checks the profile store against an embedded JSON
// schema and enforces per-profile meta.requires version constraints. It
// reports problems per profile with instance paths, so the validate
// command can point at the offending key.
package validation
