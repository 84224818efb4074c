package main

// Command names
const (
	CmdNameParse    = "parse"
	CmdNameBatch    = "batch"
	CmdNameValidate = "validate"
	CmdNameList     = "list"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagPlatform = "platform"
	FlagCommand  = "command"
	FlagFile     = "file"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagQuiet    = "quiet"
)

// Flag names - short form
const (
	FlagPlatformShort = "p"
	FlagCommandShort  = "c"
	FlagFileShort     = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagQuietShort    = "q"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "json"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeParseError = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgNoCommand          = "no command specified"
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgUnknownPlatform    = "unknown platform"
	ErrMsgMissingPlatform    = "platform is required"
	ErrMsgMissingCommand     = "command is required"
	ErrMsgMissingJobsFile    = "jobs file argument is required"
	ErrMsgMissingJobFile     = "job is missing a file field"
	ErrMsgMissingTemplateArg = "template file argument is required"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgReadStdinFailed    = "failed to read from stdin"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidJobsYAML    = "invalid jobs YAML"
	ErrMsgParseFailed        = "parse failed"
	ErrMsgTemplateInvalid    = "template invalid"
)

// Help text templates
const (
	HelpMainUsage = `netcliparse - network device CLI output parser

Usage:
    netcliparse <command> [options]

Commands:
    parse       Parse one command's output into records
    batch       Parse a YAML manifest of (platform, command, file) jobs
    validate    Validate a template file without parsing anything
    list        List platforms, or command keys for one platform
    version     Show version information
    help        Show help for a command

Use "netcliparse help <command>" for more information about a command.`

	HelpParseUsage = `Parse one command's output into records

Usage:
    netcliparse parse -p <platform> -c <command> [-f <file>] [-o <file>]

Options:
    -p, --platform <name>   Platform slug or alias (e.g. cisco_ios, iosxe)
    -c, --command <cmd>     Command string, abbreviations allowed (e.g. "sh ver")
    -f, --file <path>       Input file (default: stdin, "-")
    -o, --output <path>     Output file (default: stdout)

Output is always the spec's JSON envelope; a parse failure is reported
in the envelope's "error" object, never as a non-JSON message.

Examples:
    netcliparse parse -p cisco_ios -c "show version" -f show_version.txt
    cat show_version.txt | netcliparse parse -p cisco_ios -c "sh ver"`

	HelpBatchUsage = `Parse a YAML manifest of (platform, command, file) jobs

Usage:
    netcliparse batch <jobs.yaml>

The manifest is a YAML list of jobs:

    - platform: cisco_ios
      command: show version
      file: fixtures/show_version.txt
    - platform: arista_eos
      command: show version
      file: fixtures/arista_show_version.txt

One JSON envelope line is written to stdout per job, in manifest order.
A single job's failure does not abort the remaining jobs.

Examples:
    netcliparse batch jobs.yaml`

	HelpValidateUsage = `Validate a template file without parsing anything

Usage:
    netcliparse validate <template-file>

Exits non-zero and prints the compiler's error if the template fails to
compile; prints nothing and exits zero on success.

Examples:
    netcliparse validate internal/registry/templates/cisco_ios/show_version.tfsm`

	HelpListUsage = `List platforms, or command keys for one platform

Usage:
    netcliparse list [platform]

With no argument, lists every known platform slug. With a platform
argument, lists every command key the registry can serve for it.

Examples:
    netcliparse list
    netcliparse list cisco_ios`

	HelpVersionUsage = `Show version information

Usage:
    netcliparse version [options]

Options:
    -F, --format <format>   Output format: text, json (default: json)`

	HelpHelpUsage = `Show help for a command

Usage:
    netcliparse help [command]

Commands:
    parse       Show help for parse command
    batch       Show help for batch command
    validate    Show help for validate command
    list        Show help for list command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "netcliparse version %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName        = "netcliparse"
	CLIDescription = "network device CLI output parser"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
