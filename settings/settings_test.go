package settings

import "testing"

func TestApplyScoped_RestoresPriorState(t *testing.T) {
	s := New()
	s.Configure(map[string]any{"retries": 3})

	restore := s.ApplyScoped("lm-1", "rm-1", map[string]any{"retries": 9, "timeout": 30})

	if s.LM() != "lm-1" || s.RM() != "rm-1" {
		t.Errorf("applied state = (%v, %v), want (lm-1, rm-1)", s.LM(), s.RM())
	}
	if s.Get("retries") != 9 || s.Get("timeout") != 30 {
		t.Errorf("settings = (%v, %v), want (9, 30)", s.Get("retries"), s.Get("timeout"))
	}

	restore()

	if s.LM() != nil || s.RM() != nil {
		t.Errorf("state after restore = (%v, %v), want (nil, nil)", s.LM(), s.RM())
	}
	if s.Get("retries") != 3 {
		t.Errorf("retries after restore = %v, want 3", s.Get("retries"))
	}
	if s.Get("timeout") != nil {
		t.Errorf("timeout after restore = %v, want unset", s.Get("timeout"))
	}
}

func TestApplyScoped_NestedRestoresAreLIFO(t *testing.T) {
	s := New()

	outer := s.ApplyScoped("outer-lm", nil, map[string]any{"level": 1})
	inner := s.ApplyScoped("inner-lm", nil, map[string]any{"level": 2})

	if s.LM() != "inner-lm" || s.Get("level") != 2 {
		t.Errorf("inner state = (%v, %v), want (inner-lm, 2)", s.LM(), s.Get("level"))
	}

	inner()

	if s.LM() != "outer-lm" || s.Get("level") != 1 {
		t.Errorf("after inner restore = (%v, %v), want (outer-lm, 1)", s.LM(), s.Get("level"))
	}

	outer()

	if s.LM() != nil || s.Get("level") != nil {
		t.Errorf("after outer restore = (%v, %v), want (nil, nil)", s.LM(), s.Get("level"))
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New()
	s.Configure(map[string]any{"a": 1})

	snap := s.Snapshot()
	snap["a"] = 99
	snap["b"] = 2

	if s.Get("a") != 1 {
		t.Errorf("a = %v, want 1 after mutating the snapshot", s.Get("a"))
	}
	if s.Get("b") != nil {
		t.Errorf("b = %v, want unset", s.Get("b"))
	}
}
