package registry

import "strings"

// These canonical platform slugs are the full vendor/OS list spec.md §1 names. Every
// other recognized spelling resolves to one of these via platformAliases.
const (
	PlatformCiscoIOS      = "cisco_ios"
	PlatformCiscoNXOS     = "cisco_nxos"
	PlatformCiscoIOSXR    = "cisco_iosxr"
	PlatformJuniperJunos  = "juniper_junos"
	PlatformAristaEOS     = "arista_eos"
	PlatformNokiaSROS     = "nokia_sros"
	PlatformDriveNetsDNOS = "drivenets_dnos"
	PlatformZTEZXROS      = "zte_zxros"
)

// platformAliases maps every recognized non-canonical spelling to its
// canonical slug. Grounded on original_source/crates/netcli_core/src/platform.rs's
// FromStr table, extended with the alias pairs spec.md §8's testable
// properties name explicitly (cisco_iosxe/cisco_ios, nokia_sros/alcatel_sros,
// cisco_iosxr/cisco_xr) — the original source's six-platform enum predates
// the distillation's wider vendor list, so those three pairs are carried
// forward without a source-level match.
var platformAliases = map[string]string{
	"ios":           PlatformCiscoIOS,
	"cisco_iosxe":   PlatformCiscoIOS,
	"iosxe":         PlatformCiscoIOS,

	"nxos":  PlatformCiscoNXOS,
	"nx_os": PlatformCiscoNXOS,

	"iosxr":      PlatformCiscoIOSXR,
	"ios_xr":     PlatformCiscoIOSXR,
	"cisco_xr":   PlatformCiscoIOSXR,

	"junos": PlatformJuniperJunos,

	"eos": PlatformAristaEOS,

	"alcatel_sros": PlatformNokiaSROS,
	"sros":         PlatformNokiaSROS,

	"dnos":      PlatformDriveNetsDNOS,
	"drivenets": PlatformDriveNetsDNOS,

	"zxros": PlatformZTEZXROS,
}

// canonicalPlatformSet is the set of slugs accepted as-is, with no alias
// table lookup required.
var canonicalPlatformSet = map[string]bool{
	PlatformCiscoIOS:      true,
	PlatformCiscoNXOS:     true,
	PlatformCiscoIOSXR:    true,
	PlatformJuniperJunos:  true,
	PlatformAristaEOS:     true,
	PlatformNokiaSROS:     true,
	PlatformDriveNetsDNOS: true,
	PlatformZTEZXROS:      true,
}

// ResolvePlatform folds case and hyphens the same way command
// normalization does, then resolves aliases to a canonical slug. ok is
// false if the input, once folded, names neither a canonical platform
// nor a declared alias.
func ResolvePlatform(raw string) (canonical string, ok bool) {
	folded := foldSlug(raw)
	if folded == "" {
		return "", false
	}
	if canonicalPlatformSet[folded] {
		return folded, true
	}
	if canon, found := platformAliases[folded]; found {
		return canon, true
	}
	return "", false
}

// foldSlug lowercases and replaces hyphens with underscores, the folding
// rule spec.md §4.4 specifies for command normalization and this package
// reuses for platform spellings.
func foldSlug(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
