package netcli

import (
	"go.uber.org/zap"

	"github.com/alaineid/netcli-parse/internal/registry"
	"github.com/alaineid/netcli-parse/internal/textfsm"
)

// Option is a functional option for configuring a Parser, mirroring the
// teacher's prompty.Option shape.
type Option func(*parserConfig)

// parserConfig holds the internal configuration for a Parser.
type parserConfig struct {
	logger     *zap.Logger
	ruleCap    int
	registries []registry.Option
}

func defaultParserConfig() *parserConfig {
	return &parserConfig{
		logger:  nil,
		ruleCap: textfsm.DefaultRuleFiringCap,
	}
}

// WithLogger sets the logger used by the registry, which also passes it
// to the template compiler. The parse engine does not receive it.
// Default: nil (no logging).
func WithLogger(logger *zap.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
		c.registries = append(c.registries, registry.WithLogger(logger))
	}
}

// WithRuleFiringCap overrides the engine's per-parse rule-firing cap
// (spec.md §5). Default: textfsm.DefaultRuleFiringCap (10^7).
func WithRuleFiringCap(limit int) Option {
	return func(c *parserConfig) { c.ruleCap = limit }
}

// WithStore adds an override Store consulted before the embedded
// template bundle (e.g. registry.NewMemoryStore() or a *registry.PostgresStore).
func WithStore(s registry.Store) Option {
	return func(c *parserConfig) {
		c.registries = append([]registry.Option{registry.WithStore(s)}, c.registries...)
	}
}
