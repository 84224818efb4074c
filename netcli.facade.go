package netcli

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/alaineid/netcli-parse/internal/registry"
	"github.com/alaineid/netcli-parse/internal/textfsm"
)

// Parser is the façade's entry point: a configured registry plus engine
// options, reusable across calls and safe for concurrent use (spec.md
// §5 — a compiled template is immutable and freely shareable).
type Parser struct {
	reg     *registry.Registry
	ruleCap int
}

// New builds a Parser with the given options.
func New(opts ...Option) *Parser {
	cfg := defaultParserConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Parser{
		reg:     registry.New(cfg.registries...),
		ruleCap: cfg.ruleCap,
	}
}

// defaultParser is the package-level Parser the free functions below
// delegate to, built with zero-value options (no logging, the default
// rule-firing cap, the embedded template bundle only) on first use —
// matching spec.md §5's "registry initialises once, first use".
var (
	defaultParserOnce sync.Once
	defaultParserInst *Parser
)

func getDefaultParser() *Parser {
	defaultParserOnce.Do(func() { defaultParserInst = New() })
	return defaultParserInst
}

// ParseRecords resolves (platform, commandKey) and parses outputText
// into records. platform and commandKey are taken as already-normalized
// keys; use ParseCommandRecords when commandKey is a raw, possibly
// abbreviated command string.
func ParseRecords(ctx context.Context, platform, commandKey, outputText string) ([]textfsm.Record, error) {
	return getDefaultParser().ParseRecords(ctx, platform, commandKey, outputText)
}

// ParseCommandRecords normalizes rawCommand before lookup.
func ParseCommandRecords(ctx context.Context, platform, rawCommand, outputText string) ([]textfsm.Record, error) {
	return getDefaultParser().ParseCommandRecords(ctx, platform, rawCommand, outputText)
}

// ParseJSON is the JSON-envelope variant of ParseRecords. It never
// returns a Go error: failures are folded into the envelope itself.
func ParseJSON(ctx context.Context, platform, commandKey, outputText string) string {
	return getDefaultParser().ParseJSON(ctx, platform, commandKey, outputText)
}

// ParseCommandJSON is the JSON-envelope variant of ParseCommandRecords.
func ParseCommandJSON(ctx context.Context, platform, rawCommand, outputText string) string {
	return getDefaultParser().ParseCommandJSON(ctx, platform, rawCommand, outputText)
}

// ParseRecords implements the core lookup/compile/parse pipeline: resolve
// the template via the registry (which resolves platform aliases and
// normalizes commandKey itself), then run the engine.
func (p *Parser) ParseRecords(ctx context.Context, platform, commandKey, outputText string) ([]textfsm.Record, error) {
	records, _, _, err := p.parseWithMeta(ctx, platform, commandKey, outputText)
	return records, err
}

// ParseCommandRecords accepts a raw, possibly abbreviated or loosely
// spaced command string (e.g. "Show  Version", "sh ver"), rejects a
// whitespace-only one, and passes it through to the registry, which
// normalizes it with the expanded-then-raw-fallback lookup spec.md §4.4
// describes.
func (p *Parser) ParseCommandRecords(ctx context.Context, platform, rawCommand, outputText string) ([]textfsm.Record, error) {
	if strings.TrimSpace(rawCommand) == "" {
		return nil, NewInvalidInputError("command must not be empty")
	}
	return p.ParseRecords(ctx, platform, rawCommand, outputText)
}

// ParseJSON is the Parser-bound JSON envelope variant of ParseRecords.
func (p *Parser) ParseJSON(ctx context.Context, platform, commandKey, outputText string) string {
	records, canonicalPlatform, resolvedKey, err := p.parseWithMeta(ctx, platform, commandKey, outputText)
	if err != nil {
		return marshalEnvelope(failureEnvelope(err))
	}
	return marshalEnvelope(successEnvelope(canonicalPlatform, resolvedKey, recordsToMaps(records)))
}

// ParseCommandJSON is the Parser-bound JSON envelope variant of
// ParseCommandRecords.
func (p *Parser) ParseCommandJSON(ctx context.Context, platform, rawCommand, outputText string) string {
	if strings.TrimSpace(rawCommand) == "" {
		return marshalEnvelope(failureEnvelope(NewInvalidInputError("command must not be empty")))
	}
	records, canonicalPlatform, resolvedKey, err := p.parseWithMeta(ctx, platform, rawCommand, outputText)
	if err != nil {
		return marshalEnvelope(failureEnvelope(err))
	}
	return marshalEnvelope(successEnvelope(canonicalPlatform, resolvedKey, recordsToMaps(records)))
}

// parseWithMeta is the shared pipeline behind every exported entry
// point: validate, resolve via the registry, run the engine, normalize
// field names, and return the canonical platform/commandKey the
// registry actually resolved to alongside the records.
func (p *Parser) parseWithMeta(ctx context.Context, platform, commandKey, outputText string) ([]textfsm.Record, string, string, error) {
	if strings.TrimSpace(platform) == "" {
		return nil, "", "", NewInvalidInputError("platform must not be empty")
	}
	if strings.TrimSpace(commandKey) == "" {
		return nil, "", "", NewInvalidInputError("command_key must not be empty")
	}
	if outputText == "" {
		return nil, "", "", NewInvalidInputError("output_text must not be empty")
	}

	prog, canonicalPlatform, resolvedKey, err := p.reg.Lookup(ctx, platform, commandKey)
	if err != nil {
		return nil, "", "", classifyLookupError(platform, commandKey, err)
	}

	engine := textfsm.NewEngine(prog, textfsm.WithRuleFiringCap(p.ruleCap))
	records, err := engine.ParseString(outputText)
	if err != nil {
		return nil, "", "", classifyEngineError(err)
	}

	return NormalizeFields(resolvedKey, records), canonicalPlatform, resolvedKey, nil
}

func recordsToMaps(records []textfsm.Record) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		out[i] = map[string]any(r)
	}
	return out
}

// classifyLookupError maps a registry-layer failure onto the façade's
// wire error codes using errors.Is against the sentinels registry.go
// joins into every error it returns, so this package never needs to
// reach into cuserr.CustomError's internals to classify a failure.
func classifyLookupError(platform, commandKey string, err error) error {
	if errors.Is(err, registry.ErrNotFound) {
		return NewTemplateNotFoundErrorFromCause(platform, commandKey, err)
	}
	if errors.Is(err, textfsm.ErrTemplateInvalid) {
		return NewTemplateInvalidErrorFromCause(err)
	}
	return NewInternalError(err.Error())
}

func classifyEngineError(err error) error {
	if errors.Is(err, textfsm.ErrEngine) {
		return NewParseErrorFromCause(err)
	}
	return NewInternalError(err.Error())
}
