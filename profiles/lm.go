package profiles

import (
	"fmt"
	"maps"
	"strings"
	"sync"
)

// LanguageModel is the handle an activation constructs from a profile's lm
// section: the provider it belongs to, the model identifier, and the
// remaining keyword settings (temperature, max_tokens, api_base, ...).
type LanguageModel struct {
	Provider string
	Model    string
	Kwargs   map[string]any
}

// Kwarg returns a single keyword setting, or nil if unset.
func (l *LanguageModel) Kwarg(key string) any {
	return l.Kwargs[key]
}

func (l *LanguageModel) String() string {
	return l.Provider + "/" + l.Model
}

// LMConstructor builds a language-model handle for one provider from the
// model identifier and the profile's remaining lm settings.
type LMConstructor func(model string, kwargs map[string]any) (*LanguageModel, error)

var lmProviders = struct {
	sync.RWMutex
	m map[string]LMConstructor
}{m: map[string]LMConstructor{}}

// RegisterProvider adds or replaces the constructor for a provider name.
// Lookup is case-insensitive.
func RegisterProvider(name string, ctor LMConstructor) {
	lmProviders.Lock()
	defer lmProviders.Unlock()
	lmProviders.m[strings.ToLower(name)] = ctor
}

func lookupProvider(name string) LMConstructor {
	lmProviders.RLock()
	defer lmProviders.RUnlock()
	if ctor, ok := lmProviders.m[strings.ToLower(name)]; ok {
		return ctor
	}
	// Unknown providers fall back to a generic handle carrying the name
	// as given, so a profile for a provider we have no dedicated
	// constructor for still activates.
	return func(model string, kwargs map[string]any) (*LanguageModel, error) {
		return &LanguageModel{Provider: strings.ToLower(name), Model: model, Kwargs: kwargs}, nil
	}
}

func init() {
	for _, name := range []string{"openai", "anthropic", "ollama", "azure"} {
		provider := name
		RegisterProvider(provider, func(model string, kwargs map[string]any) (*LanguageModel, error) {
			return &LanguageModel{Provider: provider, Model: model, Kwargs: kwargs}, nil
		})
	}
}

// buildLM derives a language-model handle from a profile's lm section.
// The model and provider keys are consumed; everything else becomes the
// handle's kwargs. A section without a model yields no handle rather than
// an error. Constructor failures are wrapped with the profile name.
func buildLM(profileName string, lmSection map[string]any) (*LanguageModel, error) {
	cfg := maps.Clone(lmSection)

	model, _ := cfg["model"].(string)
	delete(cfg, "model")
	if model == "" {
		return nil, nil
	}

	provider, _ := cfg["provider"].(string)
	delete(cfg, "provider")
	if provider == "" {
		provider = "openai"
	}

	handle, err := lookupProvider(provider)(model, cfg)
	if err != nil {
		return nil, fmt.Errorf("profile %q: constructing %s language model: %w", profileName, provider, err)
	}
	return handle, nil
}
