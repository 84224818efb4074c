package registry

import (
	"errors"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Error codes for registry-layer failures. The façade (package netcli)
// maps these onto the wire-level TEMPLATE_NOT_FOUND / INTERNAL_ERROR
// codes; they are not part of the JSON envelope themselves.
const (
	ErrCodeManifestInvalid  = "REGISTRY_MANIFEST_INVALID"
	ErrCodeTemplateNotFound = "REGISTRY_TEMPLATE_NOT_FOUND"
)

// Metadata keys attached to cuserr errors raised by this package.
const (
	MetaKeyPlatform    = "platform"
	MetaKeyCommand     = "command_key"
	MetaKeyReason      = "reason"
	MetaKeySuggestions = "suggestions"
)

// Reason values for NewTemplateNotFoundError's MetaKeyReason, preserving
// original_source's finer-grained UNKNOWN_PLATFORM/UNKNOWN_COMMAND
// distinction (see SPEC_FULL.md's "Supplemented features") without
// widening the wire-level error-code taxonomy spec.md §7 fixes.
const (
	ReasonUnknownPlatform = "unknown_platform"
	ReasonUnknownCommand  = "unknown_command"
)

// ErrNotFound is joined into every lookup-miss error this package
// returns, so the façade can classify a failure with errors.Is without
// reaching into cuserr.CustomError's internals.
var ErrNotFound = errors.New("registry: template not found")

// NewManifestInvalidError wraps a registry.json decode failure.
func NewManifestInvalidError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeManifestInvalid, "registry manifest is invalid")
}

// NewTemplateNotFoundError builds a lookup-miss error, citing which
// lookup stage (platform resolution or command lookup) actually missed.
// suggestions, when non-empty, carries near-miss command keys (see
// SuggestCommands) the façade surfaces as a "did you mean" hint; pass
// nil when none apply (e.g. an unknown-platform miss).
func NewTemplateNotFoundError(platform, command, reason string, suggestions []string) error {
	err := cuserr.NewNotFoundError(ErrCodeTemplateNotFound, "template not found").
		WithMetadata(MetaKeyPlatform, platform).
		WithMetadata(MetaKeyCommand, command).
		WithMetadata(MetaKeyReason, reason)
	if len(suggestions) > 0 {
		err = err.WithMetadata(MetaKeySuggestions, strings.Join(suggestions, ", "))
	}
	return errors.Join(err, ErrNotFound)
}
