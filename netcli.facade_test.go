package netcli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaineid/netcli-parse/internal/registry"
)

const ciscoIOSShowVersionOutput = "Router01 uptime is 2 weeks, 3 days\n" +
	"Cisco IOS Software, C3750E Software (C3750E-UNIVERSALK9-M), Version 12.2(55)SE10, RELEASE SOFTWARE (fc1)\n" +
	"System image file is \"flash:C3750-IPSERVICESK9-M\"\n"

func TestParseRecords_CiscoIOSShowVersion(t *testing.T) {
	records, err := ParseRecords(context.Background(), "cisco_ios", "show_version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Router01", records[0]["hostname"])
	assert.Equal(t, "12.2(55)SE10", records[0]["version"])
	assert.Equal(t, "C3750-IPSERVICESK9-M", records[0]["software_image"])
}

func TestParseCommandRecords_AbbreviatedCommandMatchesExpandedForm(t *testing.T) {
	p := New()
	short, err := p.ParseCommandRecords(context.Background(), "cisco_ios", "sh ver", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	long, err := p.ParseCommandRecords(context.Background(), "cisco_ios", "show version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	assert.Equal(t, long, short)
}

func TestParseCommandRecords_PlatformAliasIdentity(t *testing.T) {
	p := New()
	a, err := p.ParseCommandRecords(context.Background(), "cisco_iosxe", "show version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	b, err := p.ParseCommandRecords(context.Background(), "cisco_ios", "show version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestParseCommandRecords_RejectsEmptyCommand(t *testing.T) {
	_, err := ParseCommandRecords(context.Background(), "cisco_ios", "   ", ciscoIOSShowVersionOutput)
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeInvalidInput, pe.Code)
}

func TestParseRecords_EmptyPlatformIsInvalidInput(t *testing.T) {
	_, err := ParseRecords(context.Background(), "", "show_version", ciscoIOSShowVersionOutput)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeInvalidInput, pe.Code)
}

func TestParseRecords_EmptyOutputIsInvalidInput(t *testing.T) {
	_, err := ParseRecords(context.Background(), "cisco_ios", "show_version", "")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeInvalidInput, pe.Code)
}

func TestParseRecords_UnknownPlatformIsTemplateNotFound(t *testing.T) {
	_, err := ParseRecords(context.Background(), "nonexistent_os", "show_version", ciscoIOSShowVersionOutput)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeTemplateNotFound, pe.Code)
}

func TestParseRecords_UnknownCommandIsTemplateNotFound(t *testing.T) {
	_, err := ParseRecords(context.Background(), "cisco_ios", "show_nonexistent_thing", ciscoIOSShowVersionOutput)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrCodeTemplateNotFound, pe.Code)
}

func TestParseRecords_UnknownCommandMessageCarriesDidYouMeanHint(t *testing.T) {
	_, err := ParseRecords(context.Background(), "cisco_ios", "show versoin", ciscoIOSShowVersionOutput)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "did you mean")
	assert.Contains(t, pe.Message, "show_version")
}

func TestParseJSON_SuccessEnvelope(t *testing.T) {
	out := ParseJSON(context.Background(), "cisco_ios", "show_version", ciscoIOSShowVersionOutput)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.True(t, env.OK)
	assert.Equal(t, "cisco_ios", env.Platform)
	assert.Equal(t, "show_version", env.CommandKey)
	require.Len(t, env.Records, 1)
	assert.Equal(t, "Router01", env.Records[0]["hostname"])
	assert.Nil(t, env.Error)
}

func TestParseJSON_SuccessEnvelopeKeepsRecordsKeyWhenNothingMatches(t *testing.T) {
	out := ParseJSON(context.Background(), "cisco_ios", "show_version", "this line matches no rule block\n")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["ok"])
	records, ok := decoded["records"].([]any)
	require.True(t, ok, "records key must be present and an array even when empty")
	assert.Len(t, records, 0)
}

func TestParseJSON_FailureEnvelope(t *testing.T) {
	out := ParseJSON(context.Background(), "nonexistent_os", "show_version", ciscoIOSShowVersionOutput)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.False(t, env.OK)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeTemplateNotFound, env.Error.Code)
	assert.Nil(t, env.Records)
}

func TestParseCommandJSON_EchoesCanonicalPlatformAndResolvedKey(t *testing.T) {
	out := ParseCommandJSON(context.Background(), "cisco_iosxe", "sh ver", ciscoIOSShowVersionOutput)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.True(t, env.OK)
	assert.Equal(t, "cisco_ios", env.Platform, "the aliased platform must be echoed back canonicalized")
	assert.Equal(t, "show_version", env.CommandKey, "the abbreviated command must be echoed back expanded")
}

func TestParseCommandJSON_EmptyCommandNeverReturnsGoErrorAlwaysEnvelope(t *testing.T) {
	out := ParseCommandJSON(context.Background(), "cisco_ios", "", ciscoIOSShowVersionOutput)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.False(t, env.OK)
	assert.Equal(t, ErrCodeInvalidInput, env.Error.Code)
}

func TestNew_WithStoreOverridesEmbeddedTemplate(t *testing.T) {
	mem := registry.NewMemoryStore()
	mem.Put(registry.Entry{Platform: "cisco_ios", CommandKey: "show_version"},
		"Value Required hostname (\\S+)\n\nStart\n  ^${hostname} -> Record\n")

	p := New(WithStore(mem))
	records, err := p.ParseRecords(context.Background(), "cisco_ios", "show_version", "OverrideHost\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "OverrideHost", records[0]["hostname"])
}

func TestParseString_Determinism(t *testing.T) {
	p := New()
	first, err := p.ParseRecords(context.Background(), "cisco_ios", "show_version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	second, err := p.ParseRecords(context.Background(), "cisco_ios", "show_version", ciscoIOSShowVersionOutput)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
