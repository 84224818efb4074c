package textfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_SimpleTemplate(t *testing.T) {
	tmpl := `Value Required hostname (\S+)
Value version (\S+)

Start
  ^${hostname}\s+uptime\s+is
  ^.*Version\s+${version}, -> Record
`
	prog, err := Compile(tmpl, nil)
	require.NoError(t, err)
	require.NotNil(t, prog)

	assert.Equal(t, 2, prog.Values.Len())
	assert.True(t, prog.Values.Has("hostname"))
	assert.False(t, prog.HasEOFState)
	assert.Contains(t, prog.States, StateStart)
}

func TestCompile_MissingStartState(t *testing.T) {
	tmpl := `Value hostname (\S+)

NotStart
  ^${hostname}
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Start")
}

func TestCompile_UnknownGotoTarget(t *testing.T) {
	tmpl := `Value hostname (\S+)

Start
  ^${hostname} -> Nowhere
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state")
}

func TestCompile_UndeclaredValueReference(t *testing.T) {
	tmpl := `Value hostname (\S+)

Start
  ^${nope}
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared value")
}

func TestCompile_DuplicateValueName(t *testing.T) {
	tmpl := `Value hostname (\S+)
Value hostname (\S+)

Start
  ^${hostname}
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate value")
}

func TestCompile_ContinueWithGotoRejected(t *testing.T) {
	tmpl := `Value hostname (\S+)

Start
  ^${hostname} -> Continue Next

Next
  ^.*
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Continue")
}

func TestCompile_MultipleGotoAtomsRejected(t *testing.T) {
	tmpl := `Value hostname (\S+)

Start
  ^${hostname} -> Next End

Next
  ^.*
`
	_, err := Compile(tmpl, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one")
}

func TestCompile_CatchAllRuleDropped(t *testing.T) {
	tmpl := `Value hostname (\S+)

Start
  ^${hostname} -> Record
  ^.
`
	prog, err := Compile(tmpl, nil)
	require.NoError(t, err)
	assert.Len(t, prog.States[StateStart].Rules, 1)
}

func TestCompile_OptionList(t *testing.T) {
	tmpl := `Value Filldown,Required hostname (\S+)

Start
  ^${hostname} -> Record
`
	prog, err := Compile(tmpl, nil)
	require.NoError(t, err)
	def, ok := prog.Values.Get("hostname")
	require.True(t, ok)
	assert.True(t, def.Options.Filldown)
	assert.True(t, def.Options.Required)
}

func TestCompile_CRLFLineEndings(t *testing.T) {
	tmpl := "Value hostname (\\S+)\r\n\r\nStart\r\n  ^${hostname} -> Record\r\n"
	prog, err := Compile(tmpl, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, prog.Values.Len())
}
