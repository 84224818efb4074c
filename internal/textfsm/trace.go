package textfsm

// TraceEvent describes one rule firing during a parse, for diagnostic
// tooling built on top of Engine. It mirors, at DSL scale, the step
// records internal/prompty.debug.go builds for template execution: one
// entry per unit of work, enough to reconstruct what happened without
// re-running the parse.
type TraceEvent struct {
	LineNumber int
	Line       string
	FromState  string
	ToState    string
	RuleLine   int
	Actions    []ActionKind
	Recorded   bool
}

// Tracer receives one TraceEvent per rule firing, in order.
type Tracer func(TraceEvent)

// WithTracer attaches a Tracer invoked synchronously after every rule
// firing. Passing a nil Tracer disables tracing (the default).
func WithTracer(t Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

func (e *Engine) trace(ev TraceEvent) {
	if e.tracer != nil {
		e.tracer(ev)
	}
}

func actionKinds(actions []Action) []ActionKind {
	kinds := make([]ActionKind, len(actions))
	for i, a := range actions {
		kinds[i] = a.Kind
	}
	return kinds
}
