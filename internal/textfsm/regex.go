package textfsm

import (
	"regexp"
	"strings"
)

// Pattern wraps a compiled, anchored, named-capture regular expression.
// Go's stdlib regexp already speaks the "(?P<name>...)" dialect the DSL
// compiles ${name} references into, so this adapter is a thin wrapper
// that gives anchored, line-at-a-time matching and distinguishes an
// absent optional group from one that captured an empty string — which
// bare regexp.FindStringSubmatch collapses to the same "".
type Pattern struct {
	re     *regexp.Regexp
	names  []string
	source string
}

// Capture is one named group's result from a single match.
type Capture struct {
	Value   string
	Present bool
}

// CompilePattern compiles an already-anchored regex fragment (the
// compiler is responsible for "${name}" substitution and leading "^"
// anchoring before calling this).
func CompilePattern(source string, line int) (*Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, NewTemplateInvalidError("invalid regular expression: "+err.Error(), line, err)
	}
	return &Pattern{re: re, names: re.SubexpNames(), source: source}, nil
}

// Match anchors at the start of line and returns named captures. Groups
// that did not participate in the match (e.g. an unmatched alternative)
// report Present=false rather than an empty string.
func (p *Pattern) Match(line string) (map[string]Capture, bool) {
	loc := p.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, false
	}
	// Anchoring: the spec requires the rule to match at the start of the
	// line. The compiler already prepends "^" to every rule's source, so
	// a non-zero start here would mean something unanchored slipped
	// through; treat it defensively as a non-match.
	if loc[0] != 0 {
		return nil, false
	}
	captures := make(map[string]Capture, len(p.names))
	for i, name := range p.names {
		if i == 0 || name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start == -1 {
			captures[name] = Capture{Present: false}
			continue
		}
		captures[name] = Capture{Value: line[start:end], Present: true}
	}
	return captures, true
}

// valueRefPattern matches "${name}" references inside a rule's raw
// pattern text.
var valueRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// substituteValueRefs replaces every "${name}" with "(?P<name>fragment)"
// using the declared value's regex fragment, and reports any reference
// to an undeclared value.
func substituteValueRefs(pattern string, values *ValueTable, line int) (string, error) {
	var missing string
	replaced := valueRefPattern.ReplaceAllStringFunc(pattern, func(ref string) string {
		name := valueRefPattern.FindStringSubmatch(ref)[1]
		def, ok := values.Get(name)
		if !ok {
			missing = name
			return ref
		}
		return "(?P<" + name + ">" + def.Regex + ")"
	})
	if missing != "" {
		return "", NewTemplateInvalidError("undeclared value referenced: ${"+missing+"}", line, nil)
	}
	return replaced, nil
}

// anchorPattern prepends "^" when the source doesn't already start with it.
func anchorPattern(pattern string) string {
	if strings.HasPrefix(pattern, "^") {
		return pattern
	}
	return "^" + pattern
}
