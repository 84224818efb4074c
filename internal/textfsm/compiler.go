package textfsm

import (
	"strings"

	"go.uber.org/zap"
)

var knownOptions = map[string]bool{
	OptFilldown: true,
	OptRequired: true,
	OptKey:      true,
	OptList:     true,
	OptFillup:   true,
	OptFilter:   true,
}

// Compile parses template text (the grammar in spec §4.1) into an
// immutable Program. A nil logger is treated as zap.NewNop(), matching
// internal/prompty.lexer.go's NewLexer convention.
func Compile(text string, logger *zap.Logger) (*Program, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgCompileStart, zap.Int("bytes", len(text)))

	lines := splitLines(text)

	values := newValueTable()
	idx := 0

	// value-section: leading Value lines, blank lines and comments.
	for idx < len(lines) {
		raw := lines[idx]
		trimmed := strings.TrimSpace(raw)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			idx++
		case strings.HasPrefix(trimmed, ValueLineKeyword+" "):
			def, err := parseValueLine(trimmed, idx+1)
			if err != nil {
				return nil, err
			}
			if err := values.add(def); err != nil {
				return nil, err
			}
			idx++
		default:
			goto stateSection
		}
	}

stateSection:
	states := make(map[string]*State)
	var stateOrder []string
	var current *State

	for idx < len(lines) {
		raw := lines[idx]
		trimmed := strings.TrimSpace(raw)
		lineNo := idx + 1

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			idx++
		case isIndented(raw):
			if current == nil {
				return nil, NewTemplateInvalidError("rule line outside of any state section", lineNo, nil)
			}
			rule, skip, err := parseRuleLine(trimmed, lineNo, values, logger)
			if err != nil {
				return nil, err
			}
			if !skip {
				current.Rules = append(current.Rules, *rule)
			}
			idx++
		default:
			name := trimmed
			if _, exists := states[name]; exists {
				return nil, NewTemplateInvalidError("duplicate state: "+name, lineNo, nil)
			}
			current = &State{Name: name}
			states[name] = current
			stateOrder = append(stateOrder, name)
			idx++
		}
	}

	if _, ok := states[StateStart]; !ok {
		return nil, NewTemplateInvalidError("template is missing a Start state", 0, nil)
	}

	if err := validateTransitions(states); err != nil {
		return nil, err
	}

	prog := &Program{
		Values:      values,
		States:      states,
		StateOrder:  stateOrder,
		EntryState:  StateStart,
		HasEOFState: states[StateEOF] != nil,
	}
	logger.Debug(LogMsgCompileDone,
		zap.Int(LogFieldValues, values.Len()),
		zap.Int(LogFieldStates, len(states)))
	return prog, nil
}

// splitLines splits on "\n" and strips one trailing "\r" per line, per
// spec §4.3.2 / §9 (CRLF tolerance independent of overall file style).
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isIndented(raw string) bool {
	return len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t')
}

func parseValueLine(trimmed string, line int) (ValueDef, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ValueLineKeyword))
	sep := strings.IndexAny(rest, " \t")
	if sep == -1 {
		return ValueDef{}, NewTemplateInvalidError("value declaration missing a regex fragment", line, nil)
	}
	first := rest[:sep]
	remainder := strings.TrimLeft(rest[sep:], " \t")

	isOptionList := first != ""
	for _, tok := range strings.Split(first, ",") {
		if !knownOptions[tok] {
			isOptionList = false
			break
		}
	}

	var name, regex, optsRaw string
	if isOptionList {
		optsRaw = first
		sep2 := strings.IndexAny(remainder, " \t")
		if sep2 == -1 {
			return ValueDef{}, NewTemplateInvalidError("value declaration missing a regex fragment", line, nil)
		}
		name = remainder[:sep2]
		regex = strings.TrimLeft(remainder[sep2:], " \t")
	} else {
		name = first
		regex = remainder
	}

	if name == "" {
		return ValueDef{}, NewTemplateInvalidError("value declaration missing a name", line, nil)
	}
	if regex == "" {
		return ValueDef{}, NewTemplateInvalidError("value declaration missing a regex fragment", line, nil)
	}

	opts, err := parseOptionList(optsRaw, line)
	if err != nil {
		return ValueDef{}, err
	}

	return ValueDef{Name: name, Regex: regex, Options: opts, Line: line}, nil
}

// parseRuleLine compiles one rule. skip is true for a stripped catch-all
// ("^.") rule, per spec §3/§9.
func parseRuleLine(trimmed string, line int, values *ValueTable, logger *zap.Logger) (*Rule, bool, error) {
	if !strings.HasPrefix(trimmed, "^") {
		return nil, false, NewTemplateInvalidError("rule line must start with \"^\"", line, nil)
	}

	lex := newRuleLexer(trimmed, line)
	pattern, actionSpec, hasSpec := lex.splitPatternAndActions()

	if pattern == CatchAllPattern {
		logger.Debug(LogMsgCatchAllDrop, zap.Int(LogFieldLine, line))
		return nil, true, nil
	}

	substituted, err := substituteValueRefs(pattern, values, line)
	if err != nil {
		return nil, false, err
	}
	compiled, err := CompilePattern(anchorPattern(substituted), line)
	if err != nil {
		return nil, false, err
	}

	var actions []Action
	if hasSpec {
		actions, err = parseActionSpec(actionSpec, line)
		if err != nil {
			return nil, false, err
		}
	}

	return &Rule{Pattern: compiled, Actions: actions, SourceLine: line}, false, nil
}

func parseActionSpec(spec string, line int) ([]Action, error) {
	atoms := splitActionAtoms(spec)
	var actions []Action
	hasGoto := false
	hasContinue := false

	for _, atom := range atoms {
		switch {
		case atom == ActionKeywordRecord:
			actions = append(actions, Action{Kind: ActionRecord})
		case atom == ActionKeywordNoRecord:
			actions = append(actions, Action{Kind: ActionNoRecord})
		case atom == ActionKeywordClear:
			actions = append(actions, Action{Kind: ActionClear})
		case atom == ActionKeywordClearall:
			actions = append(actions, Action{Kind: ActionClearall})
		case atom == ActionKeywordContinue:
			hasContinue = true
			actions = append(actions, Action{Kind: ActionContinue})
		case strings.HasPrefix(atom, ActionKeywordError):
			msg := strings.TrimSpace(strings.TrimPrefix(atom, ActionKeywordError))
			actions = append(actions, Action{Kind: ActionError, Message: msg})
		default:
			if hasGoto {
				return nil, NewTemplateInvalidError("rule specifies more than one state transition", line, nil)
			}
			hasGoto = true
			actions = append(actions, Action{Kind: ActionGoto, Target: atom})
		}
	}

	if hasContinue && hasGoto {
		return nil, NewTemplateInvalidError("a Continue rule must not include a state transition", line, nil)
	}

	return actions, nil
}

// validateTransitions checks every Goto target names a declared state or
// the synthetic End/EOF targets.
func validateTransitions(states map[string]*State) error {
	for _, st := range states {
		for _, r := range st.Rules {
			target, ok := r.gotoTarget()
			if !ok {
				continue
			}
			if target == StateEnd || target == StateEOF {
				continue
			}
			if _, known := states[target]; !known {
				return NewTemplateInvalidError("rule references unknown state: "+target, r.SourceLine, nil)
			}
		}
	}
	return nil
}
