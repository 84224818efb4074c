package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/alaineid/netcli-parse/internal/registry"
)

// knownPlatforms lists every canonical platform slug, for "netcliparse
// list" with no argument. Mirrors internal/registry/alias.go's
// canonical set rather than re-deriving it from entries, so the listing
// is stable even for a platform with zero bundled templates.
var knownPlatforms = []string{
	registry.PlatformCiscoIOS,
	registry.PlatformCiscoNXOS,
	registry.PlatformCiscoIOSXR,
	registry.PlatformJuniperJunos,
	registry.PlatformAristaEOS,
	registry.PlatformNokiaSROS,
	registry.PlatformDriveNetsDNOS,
	registry.PlatformZTEZXROS,
}

func runList(args []string, stdout, stderr io.Writer) int {
	reg := registry.New()

	if len(args) == 0 {
		for _, p := range knownPlatforms {
			fmt.Fprintln(stdout, p)
		}
		return ExitCodeSuccess
	}

	platform, ok := registry.ResolvePlatform(args[0])
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownPlatform, args[0])
		return ExitCodeUsageError
	}

	keys, err := reg.CommandKeys(context.Background(), platform)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeError
	}

	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(stdout, k)
	}
	return ExitCodeSuccess
}
