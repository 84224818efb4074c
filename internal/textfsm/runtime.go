package textfsm

import (
	"strings"

	"go.uber.org/zap"
)

// cellState tracks one declared value's current contents during a parse,
// separately from the filldown/fillup carry rules applied at Clearall.
type cellState struct {
	set  bool
	str  string
	list []string
}

// Engine runs a compiled Program over line-oriented input. It holds no
// mutable state of its own — each ParseString call opens a fresh
// execution frame — so a *Program/*Engine pair is safe to reuse
// concurrently, matching spec §5.
type Engine struct {
	prog       *Program
	logger     *zap.Logger
	firingsCap int
	tracer     Tracer
}

// EngineOption configures an Engine, following the functional-options
// idiom internal/prompty.options.go establishes for this codebase.
type EngineOption func(*Engine)

// WithLogger attaches a zap logger used for state-transition tracing.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRuleFiringCap overrides DefaultRuleFiringCap.
func WithRuleFiringCap(limit int) EngineOption {
	return func(e *Engine) {
		if limit > 0 {
			e.firingsCap = limit
		}
	}
}

// NewEngine builds an Engine bound to a compiled Program.
func NewEngine(prog *Program, opts ...EngineOption) *Engine {
	e := &Engine{prog: prog, logger: zap.NewNop(), firingsCap: DefaultRuleFiringCap}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// execFrame is the mutable state threaded through a single ParseString run.
type execFrame struct {
	cells    map[string]*cellState
	records  []Record
	setAt    []map[string]bool // per-record "was this scalar cell set" flags for every emitted scalar value, read by applyFillup
	firings  int
}

func newExecFrame(prog *Program) *execFrame {
	f := &execFrame{cells: make(map[string]*cellState, prog.Values.Len())}
	for _, name := range prog.Values.Names() {
		f.cells[name] = &cellState{}
	}
	return f
}

// ParseString runs the engine over raw text, splitting it into lines per
// spec §4.3.2 (trailing "\r" stripped, final unterminated line included).
func (e *Engine) ParseString(text string) ([]Record, error) {
	e.logger.Debug(LogMsgParseStart)
	lines := splitLines(text)
	// splitLines on a trailing-newline-terminated input leaves one
	// synthetic empty trailing line; drop it so EOF sees the true last
	// line of the input, matching common TextFSM implementations.
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}

	frame := newExecFrame(e.prog)
	state := e.prog.EntryState

	for i, line := range lines {
		var err error
		state, err = e.stepLine(frame, state, line, i+1)
		if err != nil {
			return nil, err
		}
		// A matched "-> End" or "-> EOF" goto (not a Continue) runs the
		// EOF step and halts immediately, per spec §4.3.3.2b — it must
		// not fall through to scanning the remaining input lines against
		// the EOF state's rules.
		if state == StateEnd || state == StateEOF {
			if err := e.stepEOF(frame, state, i+2); err != nil {
				return nil, err
			}
			state = StateEnd
			break
		}
	}

	if state != StateEnd {
		if err := e.stepEOF(frame, state, len(lines)+1); err != nil {
			return nil, err
		}
	}

	e.applyFillup(frame)

	e.logger.Debug(LogMsgParseDone, zap.Int("records", len(frame.records)))
	return frame.records, nil
}

// applyFillup back-propagates each Fillup value's most recent set
// occurrence into earlier records whose cell was never set, stopping at
// the next (earlier) record where that value was itself set — spec §2's
// "fill backward up to the most recent prior set value" rule.
func (e *Engine) applyFillup(frame *execFrame) {
	for _, def := range e.prog.Values.All() {
		if !def.Options.Fillup || def.Options.List {
			continue
		}
		var carry string
		haveCarry := false
		for i := len(frame.records) - 1; i >= 0; i-- {
			if frame.setAt[i][def.Name] {
				carry = frame.records[i][def.Name].(string)
				haveCarry = true
				continue
			}
			if haveCarry {
				frame.records[i][def.Name] = carry
			}
		}
	}
}

// stepLine matches one input line against the current state's rules,
// starting over from rule index 0 on every new line, and honors Continue
// by resuming the scan from the next rule on the same line without
// changing state (spec §4.3.3).
func (e *Engine) stepLine(frame *execFrame, state string, line string, lineNumber int) (string, error) {
	st := e.prog.States[state]
	ruleIdx := 0

	for ruleIdx < len(st.Rules) {
		rule := &st.Rules[ruleIdx]

		if err := e.checkCap(frame, state); err != nil {
			return "", err
		}

		captures, ok := rule.Pattern.Match(line)
		if !ok {
			ruleIdx++
			continue
		}
		frame.firings++

		e.applyCaptures(frame, captures)

		nextState, recordNow, cont, err := e.applyActions(frame, rule, state)
		if err != nil {
			return "", err
		}

		if recordNow {
			e.emitIfEligible(frame)
		}

		e.trace(TraceEvent{
			LineNumber: lineNumber,
			Line:       line,
			FromState:  state,
			ToState:    nextState,
			RuleLine:   rule.SourceLine,
			Actions:    actionKinds(rule.Actions),
			Recorded:   recordNow,
		})

		if nextState != state {
			e.logger.Debug(LogMsgStateChange,
				zap.String(LogFieldFromState, state),
				zap.String(LogFieldState, nextState))
		}

		if cont {
			ruleIdx++
			continue
		}

		return nextState, nil
	}

	return state, nil
}

// stepEOF runs the implicit/explicit EOF step after the last input line.
func (e *Engine) stepEOF(frame *execFrame, state string, lineNumber int) error {
	if e.prog.HasEOFState {
		if _, err := e.stepLine(frame, StateEOF, "", lineNumber); err != nil {
			return err
		}
		return nil
	}
	// No declared EOF state: flush one final record only if some
	// non-Filldown cell actually carries data, per spec §4.3.5 — this
	// keeps a template with no trailing rule match from emitting a
	// spurious all-empty record at end of input.
	if e.hasNonFilldownData(frame) {
		e.emitIfEligible(frame)
	}
	return nil
}

func (e *Engine) hasNonFilldownData(frame *execFrame) bool {
	for _, def := range e.prog.Values.All() {
		if def.Options.Filldown {
			continue
		}
		cell := frame.cells[def.Name]
		if cell.set || len(cell.list) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) checkCap(frame *execFrame, state string) error {
	if frame.firings >= e.firingsCap {
		return NewEngineError("rule-firing cap exceeded", state)
	}
	return nil
}

// applyCaptures writes a rule's matched named groups into the frame's
// cell table. A List value appends every match (duplicates included)
// rather than overwriting, per spec §2's Value option semantics.
func (e *Engine) applyCaptures(frame *execFrame, captures map[string]Capture) {
	for name, c := range captures {
		if !c.Present {
			continue
		}
		def, ok := e.prog.Values.Get(name)
		if !ok {
			continue
		}
		cell := frame.cells[name]
		if def.Options.List {
			cell.list = append(cell.list, c.Value)
		} else {
			cell.str = c.Value
		}
		cell.set = true
	}
}

// applyActions executes a rule's action atoms left to right. It returns
// the destination state (unchanged if none fires), whether a Record
// action (implicit or explicit) fired, and whether scanning should
// Continue on the same line.
func (e *Engine) applyActions(frame *execFrame, rule *Rule, state string) (next string, recordNow bool, cont bool, err error) {
	next = state

	if len(rule.Actions) == 0 {
		// No action spec at all: implicit Record, stay in state.
		return state, true, false, nil
	}

	implicitRecord := true
	for _, a := range rule.Actions {
		switch a.Kind {
		case ActionRecord:
			recordNow = true
			implicitRecord = false
		case ActionNoRecord:
			implicitRecord = false
		case ActionClear:
			e.clearCells(frame, false)
			implicitRecord = false
		case ActionClearall:
			e.clearCells(frame, true)
			implicitRecord = false
		case ActionContinue:
			cont = true
		case ActionError:
			return "", false, false, NewEngineError(errorMessage(a.Message), state)
		case ActionGoto:
			next = a.Target
			implicitRecord = false
		}
	}

	// A rule with an action spec records only through an explicit Record:
	// NoRecord, Clear, Clearall and a state transition each cancel the
	// implicit record, and a rule carrying Continue hasn't finished
	// acting on the line yet, so it never records implicitly either.
	if implicitRecord && !cont {
		recordNow = true
	}

	return next, recordNow, cont, nil
}

func errorMessage(msg string) string {
	if msg == "" {
		return "Error action fired"
	}
	return msg
}

// emitIfEligible snapshots the current cell table into a Record if every
// Required value is set, then applies Clear/Filldown/Fillup reset
// semantics for the next record.
func (e *Engine) emitIfEligible(frame *execFrame) {
	for _, def := range e.prog.Values.All() {
		if def.Options.Required && !frame.cells[def.Name].set {
			return
		}
	}

	rec := make(Record, e.prog.Values.Len())
	setFlags := make(map[string]bool, e.prog.Values.Len())
	for _, def := range e.prog.Values.All() {
		if def.Options.Filter {
			continue // captured internally, never surfaced on the record
		}
		cell := frame.cells[def.Name]
		if def.Options.List {
			if cell.list != nil {
				rec[def.Name] = append([]string(nil), cell.list...)
			} else {
				rec[def.Name] = []string{}
			}
			continue
		}
		if cell.set {
			rec[def.Name] = cell.str
			setFlags[def.Name] = true
		} else {
			rec[def.Name] = ""
		}
	}
	frame.records = append(frame.records, rec)
	frame.setAt = append(frame.setAt, setFlags)

	for _, def := range e.prog.Values.All() {
		cell := frame.cells[def.Name]
		if def.Options.Filldown {
			continue // survives across records until Clearall
		}
		*cell = cellState{}
	}
}

// clearCells resets non-Filldown cells (Clear), or every cell including
// Filldown carries (Clearall).
func (e *Engine) clearCells(frame *execFrame, all bool) {
	for _, def := range e.prog.Values.All() {
		if !all && def.Options.Filldown {
			continue
		}
		*frame.cells[def.Name] = cellState{}
	}
}
