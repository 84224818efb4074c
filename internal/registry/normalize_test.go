package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCommand_ExpandsAbbreviations(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"show version", "show_version"},
		{"sh ver", "show_version"},
		{"Show  Version", "show_version"},
		{"sho int br", "show_interface_brief"},
		{"show ip route | ex connected", "show_ip_route_exclude_connected"},
		{"show ip arp | ex unas", "show_ip_arp_exclude_unassigned"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeCommand(c.raw), "input %q", c.raw)
	}
}

func TestNormalizeCommand_HyphenFoldsToUnderscore(t *testing.T) {
	assert.Equal(t, "show_ip_bgp_summary", NormalizeCommand("show-ip-bgp-summary"))
}

func TestNormalizeCommandRaw_SkipsAbbreviationExpansion(t *testing.T) {
	assert.Equal(t, "sh_ver", NormalizeCommandRaw("sh ver"))
	assert.Equal(t, "show_version", NormalizeCommandRaw("show version"))
}

func TestNormalizeCommand_ShVerMatchesShowVersion(t *testing.T) {
	assert.Equal(t, NormalizeCommand("show version"), NormalizeCommand("sh ver"))
	assert.Equal(t, NormalizeCommand("show version"), NormalizeCommand("Show  Version"))
}
