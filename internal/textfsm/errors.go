package textfsm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error code constants for the core's two failure modes. The façade
// (package netcli) maps these onto the wider PARSE_ERROR/TEMPLATE_INVALID
// envelope codes.
const (
	ErrCodeTemplateInvalid = "TEXTFSM_TEMPLATE_INVALID"
	ErrCodeEngine          = "TEXTFSM_ENGINE"
)

// ErrTemplateInvalid and ErrEngine are sentinels joined into every error
// this package returns, so a caller across a package boundary (the
// façade) can classify a failure with errors.Is without reaching into
// cuserr.CustomError's internals.
var (
	ErrTemplateInvalid = errors.New("textfsm: template invalid")
	ErrEngine          = errors.New("textfsm: engine error")
)

// Metadata keys attached to cuserr errors raised by this package.
const (
	MetaKeyLine   = "line"
	MetaKeyCause  = "cause"
	MetaKeyState  = "state"
	MetaKeyName   = "value_name"
	MetaKeyTarget = "target_state"
)

// NewTemplateInvalidError builds a compile-time failure, citing the
// offending line number when known (0 means unknown/not line-specific).
func NewTemplateInvalidError(msg string, line int, cause error) error {
	formatted := FormatLineError(msg, line)
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeTemplateInvalid, formatted)
	} else {
		err = cuserr.NewValidationError(ErrCodeTemplateInvalid, formatted)
	}
	if line > 0 {
		err = err.WithMetadata(MetaKeyLine, strconv.Itoa(line))
	}
	return errors.Join(err, ErrTemplateInvalid)
}

// NewEngineError builds a parse-time failure (an explicit "Error" action
// fired, or the rule-firing cap was exceeded).
func NewEngineError(msg string, state string) error {
	err := cuserr.NewValidationError(ErrCodeEngine, msg).
		WithMetadata(MetaKeyState, state)
	return errors.Join(err, ErrEngine)
}

// FormatLineError is a small helper used by the compiler to keep every
// "<cause> (line N)" message shaped the same way.
func FormatLineError(cause string, line int) string {
	if line <= 0 {
		return cause
	}
	return fmt.Sprintf("%s (line %d)", cause, line)
}
