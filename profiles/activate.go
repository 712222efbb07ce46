package profiles

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/nielsgl/dspy-profiles/internal/config"
	"github.com/nielsgl/dspy-profiles/settings"
	"github.com/nielsgl/dspy-profiles/store"
)

// EnvProfile names the environment variable carrying the ambient profile
// name ("DSPY_PROFILE"). It normally wins over an unforced Activate
// argument; Force reverses that.
var EnvProfile = branding.EnvVar("PROFILE")

type options struct {
	force     bool
	overrides map[string]any
	backend   Backend
	target    *settings.Settings
}

// Option configures an activation.
type Option func(*options)

// Force makes the explicit profile argument win over the ambient
// environment profile.
func Force() Option {
	return func(o *options) { o.force = true }
}

// WithOverrides deep-merges the given configuration fragment over the
// resolved profile. Later options win over earlier ones.
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) { o.overrides = DeepMerge(o.overrides, overrides) }
}

// WithLM overrides keys inside the profile's lm section.
func WithLM(lm map[string]any) Option {
	return WithOverrides(map[string]any{sectionLM: lm})
}

// WithRM overrides keys inside the profile's rm section.
func WithRM(rm map[string]any) Option {
	return WithOverrides(map[string]any{sectionRM: rm})
}

// WithSettings overrides keys inside the profile's settings section.
func WithSettings(s map[string]any) Option {
	return WithOverrides(map[string]any{sectionSettings: s})
}

// WithBackend substitutes the profile store the activation resolves
// against. The default is the TOML store at the configured profiles path.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithTarget substitutes the settings object the activation applies to.
// The default is settings.Default.
func WithTarget(s *settings.Settings) Option {
	return func(o *options) { o.target = s }
}

func applyOptions(opts []Option) *options {
	o := &options{overrides: map[string]any{}}
	for _, opt := range opts {
		opt(o)
	}
	if o.backend == nil {
		o.backend = store.Open(config.ProfilesPath())
	}
	if o.target == nil {
		o.target = settings.Default
	}
	return o
}

type profileCtxKey struct{}

// Current returns the profile active in this context, or nil when no
// activation is in effect.
func Current(ctx context.Context) *ResolvedProfile {
	rp, _ := ctx.Value(profileCtxKey{}).(*ResolvedProfile)
	return rp
}

// Activate resolves the named profile, applies its language model,
// retrieval model, and settings to the target settings object, and returns
// a context carrying the resolved profile together with a release func
// that restores the prior state. Release funcs from nested activations
// must run innermost-first; deferring the release gives that for free.
// Calling release more than once is safe.
//
// The profile to load is chosen by precedence: the name argument when
// Force is set, then the DSPY_PROFILE environment variable, then the name
// argument, then "default".
func Activate(ctx context.Context, name string, opts ...Option) (context.Context, func(), error) {
	o := applyOptions(opts)

	chosen := chooseName(name, o.force)
	if chosen == "" {
		return ctx, func() {}, nil
	}

	resolved, err := Resolve(o.backend, chosen)
	if err != nil {
		return ctx, func() {}, err
	}
	merged := DeepMerge(resolved, o.overrides)
	rp := newResolvedProfile(chosen, merged)

	// Profiles get isolated cache directories unless the profile says
	// otherwise.
	applied := maps.Clone(rp.Settings)
	if applied == nil {
		applied = map[string]any{}
	}
	if _, ok := applied["cache_dir"]; !ok {
		applied["cache_dir"] = filepath.Join(config.CacheRoot(), chosen)
	}
	merged[sectionSettings] = applied
	rp.Settings = applied

	var lmHandle *LanguageModel
	if rp.LM != nil {
		lmOverrides, _ := o.overrides[sectionLM].(map[string]any)
		if lmHandle, err = getOrBuildLM(chosen, lmOverrides, rp.LM); err != nil {
			return ctx, func() {}, err
		}
	}
	var rmHandle *RetrievalModel
	if rp.RM != nil {
		if rmHandle, err = buildRM(chosen, rp.RM); err != nil {
			return ctx, func() {}, err
		}
	}

	var lmValue, rmValue any
	if lmHandle != nil {
		lmValue = lmHandle
	}
	if rmHandle != nil {
		rmValue = rmHandle
	}
	restore := o.target.ApplyScoped(lmValue, rmValue, applied)

	var once sync.Once
	release := func() { once.Do(restore) }
	return context.WithValue(ctx, profileCtxKey{}, rp), release, nil
}

// With runs fn inside an activation of the named profile. The prior
// process-wide configuration is restored when fn returns, whether it
// succeeds, fails, or panics.
func With(ctx context.Context, name string, fn func(context.Context) error, opts ...Option) error {
	actCtx, release, err := Activate(ctx, name, opts...)
	if err != nil {
		return err
	}
	defer release()
	return fn(actCtx)
}

// Bind wraps fn so that every call runs inside an activation of the named
// profile. Options supplied at call time merge over the bind-time options,
// so call-site overrides win.
func Bind(name string, fn func(context.Context) error, opts ...Option) func(context.Context, ...Option) error {
	return func(ctx context.Context, callOpts ...Option) error {
		combined := make([]Option, 0, len(opts)+len(callOpts))
		combined = append(combined, opts...)
		combined = append(combined, callOpts...)
		return With(ctx, name, fn, combined...)
	}
}

// chooseName applies the activation precedence rule.
func chooseName(name string, force bool) string {
	env := os.Getenv(EnvProfile)
	switch {
	case force && name != "":
		return name
	case env != "":
		return env
	case name != "":
		return name
	default:
		return DefaultProfile
	}
}
