package profiles

import (
	"errors"
	"testing"
)

// fakeBackend is an in-memory profile store for tests.
type fakeBackend map[string]map[string]any

func (f fakeBackend) Load() (map[string]map[string]any, error) {
	return f, nil
}

func testBackend() fakeBackend {
	return fakeBackend{
		"base": {
			"lm":       map[string]any{"model": "base_model", "temperature": 0.7},
			"settings": map[string]any{"retries": 2},
		},
		"child": {
			"extends": "base",
			"lm":      map[string]any{"model": "child_model"},
			"rm":      map[string]any{"url": "http://child_rm_url"},
		},
		"grandchild": {
			"extends":  "child",
			"settings": map[string]any{"retries": 5, "timeout": 60},
		},
		"circular": {
			"extends": "circular",
		},
		"loop_a": {"extends": "loop_b"},
		"loop_b": {"extends": "loop_a"},
		"orphan": {"extends": "missing_parent"},
	}
}

func TestResolve_ChainMerge(t *testing.T) {
	resolved, err := Resolve(testBackend(), "child")
	if err != nil {
		t.Fatalf("Resolve(child) failed: %v", err)
	}

	lm := resolved["lm"].(map[string]any)
	if lm["model"] != "child_model" {
		t.Errorf("lm.model = %v, want child_model", lm["model"])
	}
	if lm["temperature"] != 0.7 {
		t.Errorf("lm.temperature = %v, want 0.7 (inherited)", lm["temperature"])
	}
	rm := resolved["rm"].(map[string]any)
	if rm["url"] != "http://child_rm_url" {
		t.Errorf("rm.url = %v, want http://child_rm_url", rm["url"])
	}
	settings := resolved["settings"].(map[string]any)
	if settings["retries"] != 2 {
		t.Errorf("settings.retries = %v, want 2 (inherited)", settings["retries"])
	}
	if _, ok := resolved["extends"]; ok {
		t.Error("extends key should be stripped from the resolved config")
	}
}

func TestResolve_MultiLevelChain(t *testing.T) {
	resolved, err := Resolve(testBackend(), "grandchild")
	if err != nil {
		t.Fatalf("Resolve(grandchild) failed: %v", err)
	}

	lm := resolved["lm"].(map[string]any)
	if lm["model"] != "child_model" {
		t.Errorf("lm.model = %v, want child_model (from child)", lm["model"])
	}
	if lm["temperature"] != 0.7 {
		t.Errorf("lm.temperature = %v, want 0.7 (from base)", lm["temperature"])
	}
	settings := resolved["settings"].(map[string]any)
	if settings["retries"] != 5 {
		t.Errorf("settings.retries = %v, want 5 (overridden)", settings["retries"])
	}
	if settings["timeout"] != 60 {
		t.Errorf("settings.timeout = %v, want 60", settings["timeout"])
	}
}

func TestResolve_SelfReferenceCycle(t *testing.T) {
	_, err := Resolve(testBackend(), "circular")

	var cycleErr *CircularInheritanceError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CircularInheritanceError, got %v", err)
	}
	if cycleErr.Name != "circular" {
		t.Errorf("error names %q, want circular", cycleErr.Name)
	}
}

func TestResolve_TransitiveCycle(t *testing.T) {
	_, err := Resolve(testBackend(), "loop_a")

	var cycleErr *CircularInheritanceError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CircularInheritanceError, got %v", err)
	}
}

func TestResolve_MissingProfile(t *testing.T) {
	_, err := Resolve(testBackend(), "nope")

	var notFound *ProfileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProfileNotFoundError, got %v", err)
	}
	if notFound.Name != "nope" {
		t.Errorf("error names %q, want nope", notFound.Name)
	}
}

func TestResolve_MissingParent(t *testing.T) {
	_, err := Resolve(testBackend(), "orphan")

	var notFound *ProfileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProfileNotFoundError, got %v", err)
	}
	if notFound.Name != "missing_parent" {
		t.Errorf("error names %q, want missing_parent", notFound.Name)
	}
}

func TestResolve_AbsentDefaultIsEmpty(t *testing.T) {
	resolved, err := Resolve(testBackend(), "default")
	if err != nil {
		t.Fatalf("Resolve(default) failed: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("absent default should resolve to empty config, got %v", resolved)
	}
}

func TestResolve_ParentNamedDefaultMayBeAbsent(t *testing.T) {
	backend := fakeBackend{
		"app": {
			"extends": "default",
			"lm":      map[string]any{"model": "app_model"},
		},
	}

	resolved, err := Resolve(backend, "app")
	if err != nil {
		t.Fatalf("Resolve(app) failed: %v", err)
	}
	if resolved["lm"].(map[string]any)["model"] != "app_model" {
		t.Errorf("lm.model = %v, want app_model", resolved["lm"])
	}
}

func TestResolve_DoesNotMutateBackendData(t *testing.T) {
	backend := testBackend()

	if _, err := Resolve(backend, "grandchild"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if backend["child"]["extends"] != "base" {
		t.Error("resolution stripped extends from the stored profile")
	}
	if backend["base"]["lm"].(map[string]any)["model"] != "base_model" {
		t.Error("resolution mutated the stored base profile")
	}
}
