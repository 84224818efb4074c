package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePlatform_CanonicalPassesThrough(t *testing.T) {
	for platform := range canonicalPlatformSet {
		canon, ok := ResolvePlatform(platform)
		assert.True(t, ok)
		assert.Equal(t, platform, canon)
	}
}

func TestResolvePlatform_AliasPairs(t *testing.T) {
	cases := []struct {
		alias string
		want  string
	}{
		{"cisco_iosxe", PlatformCiscoIOS},
		{"ios", PlatformCiscoIOS},
		{"alcatel_sros", PlatformNokiaSROS},
		{"cisco_xr", PlatformCiscoIOSXR},
	}
	for _, c := range cases {
		canon, ok := ResolvePlatform(c.alias)
		assert.True(t, ok, "alias %q", c.alias)
		assert.Equal(t, c.want, canon, "alias %q", c.alias)
	}
}

func TestResolvePlatform_CaseAndHyphenFolded(t *testing.T) {
	canon, ok := ResolvePlatform("Cisco-IOSXE")
	assert.True(t, ok)
	assert.Equal(t, PlatformCiscoIOS, canon)
}

func TestResolvePlatform_UnknownReturnsFalse(t *testing.T) {
	_, ok := ResolvePlatform("nonexistent_os")
	assert.False(t, ok)
}

func TestResolvePlatform_EmptyReturnsFalse(t *testing.T) {
	_, ok := ResolvePlatform("   ")
	assert.False(t, ok)
}
