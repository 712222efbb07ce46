package profiles

// Section names with dedicated handling in a profile configuration.
const (
	sectionLM       = "lm"
	sectionRM       = "rm"
	sectionSettings = "settings"
)

// ResolvedProfile is the fully merged, override-applied configuration
// produced for one activation. It is built fresh per activation and exposed
// read-only through Current; callers must not mutate it.
type ResolvedProfile struct {
	Name   string
	Config map[string]any

	// Convenience views into Config; nil when the section is absent.
	LM       map[string]any
	RM       map[string]any
	Settings map[string]any
}

func newResolvedProfile(name string, config map[string]any) *ResolvedProfile {
	rp := &ResolvedProfile{Name: name, Config: config}
	rp.LM, _ = config[sectionLM].(map[string]any)
	rp.RM, _ = config[sectionRM].(map[string]any)
	rp.Settings, _ = config[sectionSettings].(map[string]any)
	return rp
}
