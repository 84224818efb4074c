package netcli

import "github.com/alaineid/netcli-parse/internal/textfsm"

// fieldAliases maps a commandKey to a table of field-name synonyms that
// should all normalize to one canonical key. Grounded on
// original_source/crates/netcli_core/src/normalize.rs's Phase 2 sketch
// ("VERSION"/"version"/"sw_version" -> "software_version"), implemented
// for real here rather than left as the original's pass-through stub,
// with the canonical names the bundled templates declare ("version", not
// "software_version") — see SPEC_FULL.md's Supplemented Features.
var fieldAliases = map[string]map[string]string{
	"show_version": {
		"VERSION":    "version",
		"sw_version": "version",
		"image":      "software_image",
		"host_name":  "hostname",
	},
}

// NormalizeFields applies the Phase 2 field-name normalization pass: for
// any alias declared for commandKey, a record's alias key is renamed to
// its canonical key. When the record already carries the canonical key,
// that value is kept and the alias entry is dropped. It is pure, applies
// no renaming for command keys without a declared table (Phase 1's
// pass-through default), and never drops a field that has no alias.
func NormalizeFields(commandKey string, records []textfsm.Record) []textfsm.Record {
	aliases, ok := fieldAliases[commandKey]
	if !ok {
		return records
	}

	out := make([]textfsm.Record, len(records))
	for i, rec := range records {
		normalized := make(textfsm.Record, len(rec))
		for k, v := range rec {
			if canon, aliased := aliases[k]; aliased {
				if _, already := rec[canon]; !already {
					normalized[canon] = v
				}
				continue
			}
			normalized[k] = v
		}
		out[i] = normalized
	}
	return out
}
