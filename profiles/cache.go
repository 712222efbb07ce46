package profiles

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// lmCache memoizes constructed language-model handles for the process
// lifetime. Correctness depends on the key capturing every input that
// affects construction: the profile name and the full override set.
var lmCache = struct {
	sync.Mutex
	m map[string]*LanguageModel
}{m: map[string]*LanguageModel{}}

// cacheKey derives a deterministic key from the profile name and override
// set. Override pairs are encoded in sorted key order, so two maps with
// equal contents produce the same key regardless of construction order.
func cacheKey(name string, overrides map[string]any) (string, error) {
	var b strings.Builder
	b.WriteString(name)
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		v, err := json.Marshal(overrides[k])
		if err != nil {
			return "", fmt.Errorf("encoding override %q for cache key: %w", k, err)
		}
		b.WriteString("\x00")
		b.WriteString(k)
		b.WriteString("=")
		b.Write(v)
	}
	return b.String(), nil
}

// LM returns a language-model handle for the named profile with the given
// lm-section overrides applied, reusing a previously constructed handle
// when the name and override set match. A cache hit returns without
// touching the store. A profile with no usable lm.model yields (nil, nil)
// and leaves the cache untouched; callers needing a model must check for
// nil.
func LM(name string, overrides map[string]any, opts ...Option) (*LanguageModel, error) {
	key, err := cacheKey(name, overrides)
	if err != nil {
		return nil, err
	}

	lmCache.Lock()
	handle, ok := lmCache.m[key]
	lmCache.Unlock()
	if ok {
		return handle, nil
	}

	lmSection, err := resolvedLMSection(name, overrides, opts)
	if err != nil {
		return nil, err
	}
	if len(lmSection) == 0 {
		return nil, nil
	}

	return getOrBuildLM(name, overrides, lmSection)
}

// LMUncached constructs a fresh handle for the named profile, bypassing
// the cache entirely. Useful when the caller wants an isolated handle it
// can mutate.
func LMUncached(name string, overrides map[string]any, opts ...Option) (*LanguageModel, error) {
	lmSection, err := resolvedLMSection(name, overrides, opts)
	if err != nil {
		return nil, err
	}
	if len(lmSection) == 0 {
		return nil, nil
	}
	return buildLM(name, lmSection)
}

func resolvedLMSection(name string, overrides map[string]any, opts []Option) (map[string]any, error) {
	o := applyOptions(opts)
	resolved, err := Resolve(o.backend, name)
	if err != nil {
		return nil, err
	}

	lmSection, _ := resolved[sectionLM].(map[string]any)
	if len(overrides) > 0 {
		lmSection = DeepMerge(lmSection, overrides)
	}
	return lmSection, nil
}

// getOrBuildLM returns the cached handle for (name, overrides), building
// one from the fully merged lm section on a miss. Activations route their
// LM derivation through here so a scope and a bare LM call with the same
// inputs share a handle.
func getOrBuildLM(name string, overrides, lmSection map[string]any) (*LanguageModel, error) {
	key, err := cacheKey(name, overrides)
	if err != nil {
		return nil, err
	}

	lmCache.Lock()
	defer lmCache.Unlock()
	if handle, ok := lmCache.m[key]; ok {
		return handle, nil
	}

	handle, err := buildLM(name, lmSection)
	if err != nil || handle == nil {
		return nil, err
	}
	lmCache.m[key] = handle
	return handle, nil
}

// ResetLMCache drops every cached language-model handle.
func ResetLMCache() {
	lmCache.Lock()
	defer lmCache.Unlock()
	lmCache.m = map[string]*LanguageModel{}
}
