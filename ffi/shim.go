// Package ffi exposes the façade over a C ABI, mirroring
// original_source/crates/netcli_ffi's netcli_parse_json /
// netcli_parse_command_json / netcli_free trio: a host process in any
// language with a C FFI can link this as a shared library and get the
// same JSON envelope contract netcli.ParseJSON/ParseCommandJSON return
// in-process.
package ffi

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"unsafe"

	"github.com/alaineid/netcli-parse"
)

func cstrToString(ptr *C.char) string {
	if ptr == nil {
		return ""
	}
	return C.GoString(ptr)
}

// netcli_parse_json parses outputText against the (platform, commandKey)
// template and returns a malloc'd, null-terminated JSON envelope. The
// caller must free the returned pointer with netcli_free. A panic at
// the FFI boundary (e.g. from a malformed record value) is recovered
// and folded into an INTERNAL_ERROR envelope rather than crossing into
// the host language as an unwind.
//
//export netcli_parse_json
func netcli_parse_json(platform, commandKey, outputText *C.char) *C.char {
	return C.CString(safeParseJSON(cstrToString(platform), cstrToString(commandKey), cstrToString(outputText)))
}

// netcli_parse_command_json is identical to netcli_parse_json except
// command is a raw, possibly abbreviated command string normalized
// internally by the registry.
//
//export netcli_parse_command_json
func netcli_parse_command_json(platform, command, outputText *C.char) *C.char {
	return C.CString(safeParseCommandJSON(cstrToString(platform), cstrToString(command), cstrToString(outputText)))
}

// netcli_free releases a string previously returned by
// netcli_parse_json or netcli_parse_command_json. s may be null.
//
//export netcli_free
func netcli_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// safeParseJSON and safeParseCommandJSON recover from a panic inside the
// façade so the cgo boundary never unwinds into the host process; this
// is the Go analogue of the Rust shim's panic::catch_unwind.
func safeParseJSON(platform, commandKey, outputText string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = internalErrorEnvelope("internal panic caught at FFI boundary")
		}
	}()
	return netcli.ParseJSON(context.Background(), platform, commandKey, outputText)
}

func safeParseCommandJSON(platform, command, outputText string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = internalErrorEnvelope("internal panic caught at FFI boundary")
		}
	}()
	return netcli.ParseCommandJSON(context.Background(), platform, command, outputText)
}

func internalErrorEnvelope(message string) string {
	return `{"ok":false,"error":{"code":"INTERNAL_ERROR","message":"` + message + `"}}`
}
