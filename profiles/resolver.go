package profiles

import (
	"fmt"
	"maps"
)

// Backend is the storage contract the resolver reads from. The TOML store
// satisfies it; tests substitute in-memory fakes.
type Backend interface {
	Load() (map[string]map[string]any, error)
}

// DefaultProfile is the profile name used when neither an argument nor the
// environment names one. It is the only profile allowed to be absent from
// the store, in which case it resolves to an empty configuration.
const DefaultProfile = "default"

// extendsKey links a profile to its single parent.
const extendsKey = "extends"

// Resolve loads the named profile and merges its extends chain,
// parent-to-child, into one configuration map. The extends key itself is
// stripped from the result. It fails with *ProfileNotFoundError when a
// profile in the chain is missing, and *CircularInheritanceError when the
// chain loops.
func Resolve(backend Backend, name string) (map[string]any, error) {
	all, err := backend.Load()
	if err != nil {
		return nil, err
	}
	return resolveChain(all, name, map[string]bool{name: true})
}

func resolveChain(all map[string]map[string]any, name string, visited map[string]bool) (map[string]any, error) {
	stored, ok := all[name]
	if !ok {
		if name == DefaultProfile {
			return map[string]any{}, nil
		}
		return nil, &ProfileNotFoundError{Name: name}
	}

	merged := maps.Clone(stored)
	raw, ok := merged[extendsKey]
	if !ok {
		return merged, nil
	}

	parent, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("profile %q: 'extends' must be a profile name, got %T", name, raw)
	}
	if parent == name || visited[parent] {
		return nil, &CircularInheritanceError{Name: name}
	}
	visited[parent] = true

	base, err := resolveChain(all, parent, visited)
	if err != nil {
		return nil, err
	}
	delete(merged, extendsKey)
	return DeepMerge(base, merged), nil
}
