package textfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTable_AddAndGet(t *testing.T) {
	table := newValueTable()
	require.NoError(t, table.add(ValueDef{Name: "hostname", Regex: `\S+`}))
	require.NoError(t, table.add(ValueDef{Name: "version", Regex: `\S+`, Options: OptionSet{Required: true}}))

	assert.Equal(t, 2, table.Len())
	assert.True(t, table.Has("hostname"))
	assert.False(t, table.Has("nope"))

	def, ok := table.Get("version")
	require.True(t, ok)
	assert.True(t, def.Options.Required)

	assert.Equal(t, []string{"hostname", "version"}, table.Names())
}

func TestValueTable_RejectsDuplicateName(t *testing.T) {
	table := newValueTable()
	require.NoError(t, table.add(ValueDef{Name: "hostname", Regex: `\S+`}))
	err := table.add(ValueDef{Name: "hostname", Regex: `\S+`})
	require.Error(t, err)
}

func TestParseOptionList_AllFlags(t *testing.T) {
	opts, err := parseOptionList("Filldown,Required,Key,List,Fillup,Filter", 1)
	require.NoError(t, err)
	assert.True(t, opts.Filldown)
	assert.True(t, opts.Required)
	assert.True(t, opts.Key)
	assert.True(t, opts.List)
	assert.True(t, opts.Fillup)
	assert.True(t, opts.Filter)
}

func TestParseOptionList_UnknownOption(t *testing.T) {
	_, err := parseOptionList("Bogus", 1)
	require.Error(t, err)
}

func TestParseOptionList_Empty(t *testing.T) {
	opts, err := parseOptionList("", 1)
	require.NoError(t, err)
	assert.Equal(t, OptionSet{}, opts)
}
