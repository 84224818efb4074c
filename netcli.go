// Package netcli parses network-device CLI output into structured
// records using a line-oriented, state-machine template DSL (the
// "TextFSM" family of tools). Given a platform name, a command name or
// key, and the raw text a device printed, it compiles (and caches) the
// matching template and runs it over the text:
//
//	records, err := netcli.ParseRecords(ctx, "cisco_ios", "show_version", rawOutput)
//
// Platform spellings and command phrasing are normalized before lookup,
// so "Show Version" and "sh ver" resolve to the same template as
// "show_version", and "cisco_iosxe" resolves to the same templates as
// "cisco_ios". See internal/textfsm for the template grammar and
// interpreter, and internal/registry for template storage, alias
// resolution, and command normalization.
//
// # JSON envelope
//
// ParseJSON and ParseCommandJSON never return a Go error: failures are
// folded into the envelope's own "ok":false shape so callers across a
// process or FFI boundary always get a single parseable string back.
//
//	out := netcli.ParseCommandJSON(ctx, "cisco_ios", "show version", rawOutput)
//	// {"ok":true,"platform":"cisco_ios","commandKey":"show_version","records":[...]}
//
// # Configuration
//
// Build a configured Parser with functional options:
//
//	n := netcli.New(netcli.WithLogger(logger), netcli.WithRuleFiringCap(1_000_000))
package netcli
