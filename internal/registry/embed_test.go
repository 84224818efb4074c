package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEmbeddedStore_ListsBundledEntries(t *testing.T) {
	store := DefaultEmbeddedStore()
	entries, err := store.Entries(context.Background())
	require.NoError(t, err)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Platform+"/"+e.CommandKey)
	}
	assert.Contains(t, keys, "cisco_ios/show_version")
	assert.Contains(t, keys, "cisco_ios/show_interfaces")
	assert.Contains(t, keys, "arista_eos/show_version")
}

func TestDefaultEmbeddedStore_LookupHit(t *testing.T) {
	store := DefaultEmbeddedStore()
	text, found, err := store.Lookup(context.Background(), "cisco_ios", "show_version")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, text, "Value Required hostname")
}

func TestDefaultEmbeddedStore_LookupMiss(t *testing.T) {
	store := DefaultEmbeddedStore()
	_, found, err := store.Lookup(context.Background(), "nonexistent_os", "show_version")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDefaultEmbeddedStore_IsAProcessWideSingleton(t *testing.T) {
	assert.Same(t, DefaultEmbeddedStore(), DefaultEmbeddedStore())
}
