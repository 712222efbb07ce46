package profiles

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildLM_DefaultsToOpenAI(t *testing.T) {
	handle, err := buildLM("p", map[string]any{"model": "gpt-4o-mini", "temperature": 0.2})
	if err != nil {
		t.Fatalf("buildLM failed: %v", err)
	}
	if handle.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", handle.Provider)
	}
	if handle.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", handle.Model)
	}
	if handle.Kwarg("temperature") != 0.2 {
		t.Errorf("temperature = %v, want 0.2", handle.Kwarg("temperature"))
	}
	if _, ok := handle.Kwargs["model"]; ok {
		t.Error("model key should be consumed, not kept as a kwarg")
	}
}

func TestBuildLM_ProviderLookupIsCaseInsensitive(t *testing.T) {
	handle, err := buildLM("p", map[string]any{"model": "claude-sonnet", "provider": "Anthropic"})
	if err != nil {
		t.Fatalf("buildLM failed: %v", err)
	}
	if handle.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", handle.Provider)
	}
}

func TestBuildLM_UnknownProviderFallsBack(t *testing.T) {
	handle, err := buildLM("p", map[string]any{"model": "mystery-1", "provider": "acme"})
	if err != nil {
		t.Fatalf("buildLM failed: %v", err)
	}
	if handle.Provider != "acme" {
		t.Errorf("Provider = %q, want acme", handle.Provider)
	}
	if handle.Model != "mystery-1" {
		t.Errorf("Model = %q, want mystery-1", handle.Model)
	}
}

func TestBuildLM_NoModelMeansNoHandle(t *testing.T) {
	handle, err := buildLM("p", map[string]any{"temperature": 0.5})
	if err != nil {
		t.Fatalf("buildLM failed: %v", err)
	}
	if handle != nil {
		t.Errorf("handle = %v, want nil without a model", handle)
	}
}

func TestBuildLM_ConstructorErrorNamesProfile(t *testing.T) {
	RegisterProvider("failing", func(model string, kwargs map[string]any) (*LanguageModel, error) {
		return nil, errors.New("bad credentials")
	})

	_, err := buildLM("broken_profile", map[string]any{"model": "x", "provider": "failing"})
	if err == nil {
		t.Fatal("expected constructor error to propagate")
	}
	for _, want := range []string{"broken_profile", "bad credentials"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestBuildRM_DefaultType(t *testing.T) {
	handle, err := buildRM("p", map[string]any{"url": "http://rm.example"})
	if err != nil {
		t.Fatalf("buildRM failed: %v", err)
	}
	if handle.Type != DefaultRM {
		t.Errorf("Type = %q, want %q", handle.Type, DefaultRM)
	}
	if handle.Kwarg("url") != "http://rm.example" {
		t.Errorf("url = %v, want http://rm.example", handle.Kwarg("url"))
	}
}

func TestBuildRM_DiscriminatorSelectsImplementation(t *testing.T) {
	RegisterRM("custom", func(kwargs map[string]any) (*RetrievalModel, error) {
		return &RetrievalModel{Type: "custom", Kwargs: kwargs}, nil
	})

	handle, err := buildRM("p", map[string]any{"type": "custom", "k": "v"})
	if err != nil {
		t.Fatalf("buildRM failed: %v", err)
	}
	if handle.Type != "custom" {
		t.Errorf("Type = %q, want custom", handle.Type)
	}
	if _, ok := handle.Kwargs["type"]; ok {
		t.Error("type key should be consumed, not kept as a kwarg")
	}
}

func TestBuildRM_UnknownTypeErrors(t *testing.T) {
	_, err := buildRM("p", map[string]any{"type": "nonexistent"})
	if err == nil {
		t.Fatal("expected an error for an unknown rm type")
	}
}
