package textfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTracer_ReceivesOneEventPerRuleFiring(t *testing.T) {
	prog := mustCompile(t, `Value Required hostname (\S+)
Value version (\S+)

Start
  ^${hostname}\s+uptime\s+is -> NoRecord
  ^.*Version\s+${version}, -> Record
`)

	var events []TraceEvent
	engine := NewEngine(prog, WithTracer(func(ev TraceEvent) {
		events = append(events, ev)
	}))

	_, err := engine.ParseString("Router01 uptime is 2 weeks\nCisco IOS Software, Version 15.2(4)S,\n")
	require.NoError(t, err)

	require.Len(t, events, 2)

	assert.Equal(t, 1, events[0].LineNumber)
	assert.Equal(t, StateStart, events[0].FromState)
	assert.Equal(t, StateStart, events[0].ToState)
	assert.False(t, events[0].Recorded)
	assert.Contains(t, events[0].Actions, ActionNoRecord)

	assert.Equal(t, 2, events[1].LineNumber)
	assert.True(t, events[1].Recorded)
	assert.Contains(t, events[1].Actions, ActionRecord)
}

func TestWithTracer_NilTracerDisablesTracing(t *testing.T) {
	prog := mustCompile(t, `Value Required hostname (\S+)

Start
  ^${hostname}
`)
	engine := NewEngine(prog, WithTracer(nil))
	records, err := engine.ParseString("Router01\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestWithTracer_CapturesGotoTransition(t *testing.T) {
	prog := mustCompile(t, `Value Required hostname (\S+)

Start
  ^${hostname} -> Next

Next
  ^.*
`)
	var events []TraceEvent
	engine := NewEngine(prog, WithTracer(func(ev TraceEvent) {
		events = append(events, ev)
	}))

	_, err := engine.ParseString("Router01\nanything\n")
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, StateStart, events[0].FromState)
	assert.Equal(t, "Next", events[0].ToState)
	assert.Equal(t, "Next", events[1].FromState)
	assert.Equal(t, "Next", events[1].ToState)
}
