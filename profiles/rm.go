package profiles

import (
	"fmt"
	"maps"
	"strings"
	"sync"
)

// RetrievalModel is the handle an activation constructs from a profile's rm
// section.
type RetrievalModel struct {
	Type   string
	Kwargs map[string]any
}

// Kwarg returns a single keyword setting, or nil if unset.
func (r *RetrievalModel) Kwarg(key string) any {
	return r.Kwargs[key]
}

// RMConstructor builds a retrieval-model handle from a profile's rm
// settings.
type RMConstructor func(kwargs map[string]any) (*RetrievalModel, error)

// rmTypeKey selects the retrieval implementation inside an rm section.
const rmTypeKey = "type"

// DefaultRM is the retrieval implementation used when an rm section carries
// no type discriminator.
const DefaultRM = "colbertv2"

var rmTypes = struct {
	sync.RWMutex
	m map[string]RMConstructor
}{m: map[string]RMConstructor{}}

// RegisterRM adds or replaces the constructor for a retrieval type name.
// Lookup is case-insensitive.
func RegisterRM(name string, ctor RMConstructor) {
	rmTypes.Lock()
	defer rmTypes.Unlock()
	rmTypes.m[strings.ToLower(name)] = ctor
}

func init() {
	RegisterRM(DefaultRM, func(kwargs map[string]any) (*RetrievalModel, error) {
		return &RetrievalModel{Type: DefaultRM, Kwargs: kwargs}, nil
	})
}

// buildRM derives a retrieval-model handle from a profile's rm section.
// The type key, when present, selects a registered implementation and is
// consumed; everything else becomes the handle's kwargs.
func buildRM(profileName string, rmSection map[string]any) (*RetrievalModel, error) {
	cfg := maps.Clone(rmSection)

	rmType, _ := cfg[rmTypeKey].(string)
	delete(cfg, rmTypeKey)
	if rmType == "" {
		rmType = DefaultRM
	}

	rmTypes.RLock()
	ctor, ok := rmTypes.m[strings.ToLower(rmType)]
	rmTypes.RUnlock()
	if !ok {
		return nil, fmt.Errorf("profile %q: unknown retrieval model type %q", profileName, rmType)
	}

	handle, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("profile %q: constructing %s retrieval model: %w", profileName, rmType, err)
	}
	return handle, nil
}
