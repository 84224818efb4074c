package netcli

import (
	"errors"

	"github.com/alaineid/netcli-parse/internal/registry"
	"github.com/itsatony/go-cuserr"
)

// ParseError is the façade's error taxonomy (spec.md §7): every failure
// that can reach a caller of ParseRecords/ParseCommandRecords carries one
// of the wire codes in netcli.constants.go, plus a human-readable message citing the
// offending platform/command where available. The underlying registry/
// textfsm cuserr.CustomError (with its own metadata) is preserved as the
// cause for callers that want to inspect it via errors.Unwrap.
type ParseError struct {
	Code    string
	Message string
	cause   error
}

func (e *ParseError) Error() string { return e.Code + ": " + e.Message }

func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(code, message string, cause error) *ParseError {
	return &ParseError{Code: code, Message: message, cause: cause}
}

// NewInvalidInputError reports an empty platform, command, or output
// argument, or a whitespace-only platform or command.
func NewInvalidInputError(message string) error {
	return newParseError(ErrCodeInvalidInput, message, nil)
}

// NewTemplateNotFoundErrorFromCause wraps a registry lookup-miss error
// (which already carries reason=unknown_platform/unknown_command
// metadata) into the single TEMPLATE_NOT_FOUND wire code spec.md §7
// mandates, appending the registry's "did you mean" hint (see
// registry.SuggestCommands) to the message when one was computed.
func NewTemplateNotFoundErrorFromCause(platform, commandKey string, cause error) error {
	msg := "template not found for platform=" + platform + " command=" + commandKey
	var customErr *cuserr.CustomError
	if errors.As(cause, &customErr) {
		if suggestions, ok := customErr.GetMetadata(registry.MetaKeySuggestions); ok && suggestions != "" {
			msg += "; did you mean: " + suggestions + "?"
		}
	}
	return newParseError(ErrCodeTemplateNotFound, msg, cause)
}

// NewTemplateInvalidErrorFromCause wraps a compiler rejection.
func NewTemplateInvalidErrorFromCause(cause error) error {
	return newParseError(ErrCodeTemplateInvalid, cause.Error(), cause)
}

// NewParseErrorFromCause wraps an engine-time failure (an explicit Error
// action fired, or the rule-firing cap was exceeded).
func NewParseErrorFromCause(cause error) error {
	return newParseError(ErrCodeParseError, cause.Error(), cause)
}

// NewInternalError reports a foreign-boundary panic or encoding failure.
func NewInternalError(message string) error {
	return newParseError(ErrCodeInternal, message, nil)
}
