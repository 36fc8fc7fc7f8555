package namegen

import (
	"log/slog"
	"sync"
)

// Factory constructs the generator for a policy from the Selector options.
type Factory func(o *Options) (Generator, error)

// Selector resolves exactly one Generator per rewriting session.
//
// The first successful Resolve picks the strategy and caches it. Every later
// call returns the cached generator and ignores its policy argument, so all
// renaming in a session draws from a single name space.
type Selector struct {
	mu     sync.Mutex
	opts   *Options
	cached Generator
	policy Policy
}

// NewSelector creates a Selector. Without options it targets JavaScript with
// the default hexadecimal prefix and an empty dictionary.
func NewSelector(opts ...Option) *Selector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Selector{opts: o}
}

// Resolve returns the session generator, constructing it on the first call.
//
// On the first call PolicyDictionary resolves to a Dictionary, PolicyMangled
// to a Mangled generator and anything else, including values outside the
// enum, to a Hexadecimal generator. Later calls return the same generator
// whatever policy they pass.
//
// A misconfigured strategy yields a *ConfigError and nothing is cached.
func (s *Selector) Resolve(policy Policy) (Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		if policy != s.policy {
			s.opts.logger.Debug("generator already resolved, policy ignored",
				slog.String("requested", policy.String()),
				slog.String("resolved", s.policy.String()),
			)
		}

		return s.cached, nil
	}

	effective := policy

	factory, ok := s.opts.factories[policy]
	if !ok {
		effective = DefaultPolicy
		factory = s.opts.factories[DefaultPolicy]

		s.opts.logger.Debug("unknown policy, using default",
			slog.String("requested", policy.String()),
			slog.String("default", effective.String()),
		)
	}

	gen, err := factory(s.opts)
	if err != nil {
		return nil, &ConfigError{Policy: effective, Err: err}
	}

	for _, name := range s.opts.Preserved {
		gen.Preserve(name)
	}

	s.cached = gen
	s.policy = effective

	s.opts.logger.Debug("identifier name generator resolved",
		slog.String("policy", effective.String()),
		slog.String("language", s.opts.Language.Name),
		slog.Int("preserved", len(s.opts.Preserved)),
	)

	return gen, nil
}

// Resolved returns the cached generator and the policy it was built for.
// The boolean is false before the first successful Resolve.
func (s *Selector) Resolved() (Generator, Policy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cached, s.policy, s.cached != nil
}
