package settings

import (
	"maps"
	"sync"
)

// Settings is the process-wide configuration object that activations apply
// to. It holds the currently configured language model, retrieval model, and
// arbitrary named settings. All access goes through the mutex, and scoped
// application returns a restore func that reinstates the exact prior state.
type Settings struct {
	mu    sync.Mutex
	lm    any
	rm    any
	extra map[string]any
}

// Default is the shared process-wide instance. Activations use it unless an
// explicit Settings object is injected, which is how tests substitute their
// own.
var Default = New()

// New returns an empty Settings object.
func New() *Settings {
	return &Settings{extra: map[string]any{}}
}

// ApplyScoped sets the language model, retrieval model, and named settings
// and returns a restore func that puts back the prior state. Restore funcs
// from nested applications must be called in reverse order of application.
func (s *Settings) ApplyScoped(lm, rm any, extra map[string]any) (restore func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevLM, prevRM := s.lm, s.rm
	prevExtra := maps.Clone(s.extra)

	s.lm = lm
	s.rm = rm
	for k, v := range extra {
		s.extra[k] = v
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lm = prevLM
		s.rm = prevRM
		s.extra = prevExtra
	}
}

// Configure eagerly sets named settings without a restore scope.
func (s *Settings) Configure(extra map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range extra {
		s.extra[k] = v
	}
}

// LM returns the currently configured language model, or nil.
func (s *Settings) LM() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lm
}

// RM returns the currently configured retrieval model, or nil.
func (s *Settings) RM() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rm
}

// Get returns a named setting, or nil if it is not set.
func (s *Settings) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extra[key]
}

// Snapshot returns a copy of all named settings.
func (s *Settings) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.extra)
}
