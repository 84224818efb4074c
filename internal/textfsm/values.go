package textfsm

import "strings"

// OptionSet is the fixed set of flags a declared Value may carry.
type OptionSet struct {
	Filldown bool
	Required bool
	Key      bool
	List     bool
	Fillup   bool
	Filter   bool
}

// ValueDef is one "Value <options> NAME regex" declaration.
type ValueDef struct {
	Name    string
	Regex   string
	Options OptionSet
	Line    int
}

// parseOptionList turns a comma-separated option token list into an
// OptionSet, rejecting unknown option names.
func parseOptionList(raw string, line int) (OptionSet, error) {
	var opts OptionSet
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch tok {
		case OptFilldown:
			opts.Filldown = true
		case OptRequired:
			opts.Required = true
		case OptKey:
			opts.Key = true
		case OptList:
			opts.List = true
		case OptFillup:
			opts.Fillup = true
		case OptFilter:
			opts.Filter = true
		default:
			return opts, NewTemplateInvalidError("unknown value option: "+tok, line, nil)
		}
	}
	return opts, nil
}

// ValueTable is the ordered, validated collection of a template's
// declared values. Declaration order is preserved because §5 requires
// record field iteration to follow it.
type ValueTable struct {
	defs  []ValueDef
	index map[string]int
}

func newValueTable() *ValueTable {
	return &ValueTable{index: make(map[string]int)}
}

// add registers a value definition, rejecting duplicate names.
func (t *ValueTable) add(def ValueDef) error {
	if def.Name == "" {
		return NewTemplateInvalidError("value declaration missing a name", def.Line, nil)
	}
	if _, exists := t.index[def.Name]; exists {
		return NewTemplateInvalidError("duplicate value name: "+def.Name, def.Line, nil)
	}
	t.index[def.Name] = len(t.defs)
	t.defs = append(t.defs, def)
	return nil
}

// Has reports whether name was declared.
func (t *ValueTable) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Get returns the declaration for name.
func (t *ValueTable) Get(name string) (ValueDef, bool) {
	i, ok := t.index[name]
	if !ok {
		return ValueDef{}, false
	}
	return t.defs[i], true
}

// Names returns declared value names in declaration order.
func (t *ValueTable) Names() []string {
	names := make([]string, len(t.defs))
	for i, d := range t.defs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of declared values.
func (t *ValueTable) Len() int { return len(t.defs) }

// All returns the declarations in order.
func (t *ValueTable) All() []ValueDef {
	return t.defs
}
