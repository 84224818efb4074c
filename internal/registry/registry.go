package registry

import (
	"context"

	"github.com/alaineid/netcli-parse/internal/textfsm"
	"go.uber.org/zap"
)

// Registry is the external collaborator spec.md §4.4 describes:
// lookup(platform, command_key) -> (template_bytes, canonical_platform),
// with alias resolution and normalization performed internally, backed
// by one or more layered Stores and a compiled-template cache.
type Registry struct {
	stores []Store // consulted in order; first hit wins
	cache  *CompiledCache
	logger *zap.Logger
}

// Option configures a Registry, the same functional-options idiom used
// throughout this codebase.
type Option func(*Registry)

// WithStore appends an additional Store, consulted after any already
// added. New always appends the embedded bundle after every store added
// here, so an override store (memory or Postgres) takes precedence.
func WithStore(s Store) Option {
	return func(r *Registry) { r.stores = append(r.stores, s) }
}

// WithLogger attaches a zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Registry. Stores added via WithStore are consulted, in
// the order added, before the process-wide embedded template bundle,
// which is always appended last so overrides can add or replace a
// template without losing the built-in set.
func New(opts ...Option) *Registry {
	r := &Registry{cache: NewCompiledCache(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.stores = append(r.stores, DefaultEmbeddedStore())
	return r
}

// Lookup resolves a platform spelling and raw command string to a
// compiled template, per spec.md §4.4: alias resolution, then
// normalized-form lookup, falling back to the raw (unexpanded) form if
// the normalized form misses.
func (r *Registry) Lookup(ctx context.Context, rawPlatform, rawCommand string) (*textfsm.Program, string, string, error) {
	platform, ok := ResolvePlatform(rawPlatform)
	if !ok {
		return nil, "", "", NewTemplateNotFoundError(rawPlatform, rawCommand, ReasonUnknownPlatform, nil)
	}

	normalized := NormalizeCommand(rawCommand)
	text, found, err := r.lookupText(ctx, platform, normalized)
	if err != nil {
		return nil, "", "", err
	}
	commandKey := normalized

	if !found {
		raw := NormalizeCommandRaw(rawCommand)
		if raw != normalized {
			text, found, err = r.lookupText(ctx, platform, raw)
			if err != nil {
				return nil, "", "", err
			}
			commandKey = raw
		}
	}

	if !found {
		return nil, "", "", NewTemplateNotFoundError(platform, normalized, ReasonUnknownCommand, r.suggestCommandKeys(ctx, platform, normalized))
	}

	program, err := r.cache.GetOrCompile(platform, commandKey, func() (*textfsm.Program, error) {
		return textfsm.Compile(text, r.logger)
	})
	if err != nil {
		return nil, "", "", err
	}
	return program, platform, commandKey, nil
}

func (r *Registry) lookupText(ctx context.Context, platform, commandKey string) (string, bool, error) {
	for _, s := range r.stores {
		text, found, err := s.Lookup(ctx, platform, commandKey)
		if err != nil {
			return "", false, err
		}
		if found {
			return text, true, nil
		}
	}
	return "", false, nil
}

// maxSuggestions bounds the "did you mean" hint attached to a
// TEMPLATE_NOT_FOUND error.
const maxSuggestions = 3

// suggestCommandKeys best-effort computes near-miss command keys for a
// raw command that missed lookup on platform. A failure enumerating
// entries is swallowed (nil suggestions) rather than shadowing the
// caller's actual NewTemplateNotFoundError with an unrelated Store error.
func (r *Registry) suggestCommandKeys(ctx context.Context, platform, rawCommand string) []string {
	keys, err := r.CommandKeys(ctx, platform)
	if err != nil {
		return nil
	}
	return SuggestCommands(rawCommand, keys, maxSuggestions)
}

// CommandKeys returns every distinct commandKey declared for platform,
// across all layered stores — used for "did you mean" suggestions.
func (r *Registry) CommandKeys(ctx context.Context, platform string) ([]string, error) {
	seen := make(map[string]bool)
	var keys []string
	for _, s := range r.stores {
		entries, err := s.Entries(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.Platform != platform || seen[e.CommandKey] {
				continue
			}
			seen[e.CommandKey] = true
			keys = append(keys, e.CommandKey)
		}
	}
	return keys, nil
}
