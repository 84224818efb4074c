package netcli

// Error codes visible at the JSON envelope boundary, per spec.md §7.
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeTemplateNotFound  = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateInvalid   = "TEMPLATE_INVALID"
	ErrCodeParseError        = "PARSE_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Metadata keys attached to cuserr errors raised by this package.
const (
	MetaKeyPlatform   = "platform"
	MetaKeyCommandKey = "command_key"
	MetaKeyField      = "field"
)

// Log field/message constants.
const (
	LogFieldPlatform   = "platform"
	LogFieldCommandKey = "command_key"
	LogMsgParseStart   = "parsing command output"
	LogMsgParseDone    = "parse complete"
	LogMsgLookupMiss   = "template lookup missed"
)
