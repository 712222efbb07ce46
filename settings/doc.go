// Package settings holds the process-wide configuration state that profile
// activations apply to: the current language model handle, retrieval model
// handle, and free-form named settings. It is the single seam between the
// activation machinery and global state — code never reaches into ambient
// globals directly, which keeps the object swappable in tests.
package settings
