package registry

import "strings"

// abbreviations is the fixed single-token expansion table spec.md §4.4
// names explicitly. Grounded on original_source/crates/netcli_core/src/commands.rs's
// split-lowercase-replace approach, extended with the abbreviation step
// the original's closed six-command enum didn't need but a general
// registry does.
var abbreviations = map[string]string{
	"sh":   "show",
	"sho":  "show",
	"ver":  "version",
	"int":  "interface",
	"br":   "brief",
	"ex":   "exclude",
	"unas": "unassigned",
}

// NormalizeCommand turns a raw, possibly abbreviated or loosely spaced
// command string into its canonical underscore-joined key, per spec.md
// §4.4: split on whitespace and "|", lowercase, hyphen→underscore,
// expand known abbreviations token-by-token, join with "_".
func NormalizeCommand(raw string) string {
	return strings.Join(normalizeTokens(raw, true), "_")
}

// NormalizeCommandRaw performs the same splitting and folding but skips
// abbreviation expansion — the fallback form spec.md §4.4 specifies for
// when the expanded form misses the registry.
func NormalizeCommandRaw(raw string) string {
	return strings.Join(normalizeTokens(raw, false), "_")
}

func normalizeTokens(raw string, expand bool) []string {
	folded := strings.ToLower(raw)
	folded = strings.ReplaceAll(folded, "-", "_")
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '|'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		for _, part := range strings.Split(f, "_") {
			if part == "" {
				continue
			}
			if expand {
				if exp, ok := abbreviations[part]; ok {
					part = exp
				}
			}
			tokens = append(tokens, part)
		}
	}
	return tokens
}
