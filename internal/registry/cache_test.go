package registry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alaineid/netcli-parse/internal/textfsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trivialProgram(t *testing.T) *textfsm.Program {
	t.Helper()
	prog, err := textfsm.Compile("Value hostname (\\S+)\n\nStart\n  ^${hostname}\n", nil)
	require.NoError(t, err)
	return prog
}

func TestCompiledCache_CompilesOnceThenReuses(t *testing.T) {
	cache := NewCompiledCache()
	prog := trivialProgram(t)

	var calls int32
	compileFn := func() (*textfsm.Program, error) {
		atomic.AddInt32(&calls, 1)
		return prog, nil
	}

	got1, err := cache.GetOrCompile("cisco_ios", "show_version", compileFn)
	require.NoError(t, err)
	got2, err := cache.GetOrCompile("cisco_ios", "show_version", compileFn)
	require.NoError(t, err)

	assert.Same(t, prog, got1)
	assert.Same(t, prog, got2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, cache.Len())
}

func TestCompiledCache_DistinctKeysCompileIndependently(t *testing.T) {
	cache := NewCompiledCache()
	prog := trivialProgram(t)
	compileFn := func() (*textfsm.Program, error) { return prog, nil }

	_, err := cache.GetOrCompile("cisco_ios", "show_version", compileFn)
	require.NoError(t, err)
	_, err = cache.GetOrCompile("arista_eos", "show_version", compileFn)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
}

func TestCompiledCache_FailedCompileIsNotCached(t *testing.T) {
	cache := NewCompiledCache()
	boom := errors.New("boom")

	_, err := cache.GetOrCompile("cisco_ios", "show_version", func() (*textfsm.Program, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())

	prog := trivialProgram(t)
	got, err := cache.GetOrCompile("cisco_ios", "show_version", func() (*textfsm.Program, error) {
		return prog, nil
	})
	require.NoError(t, err)
	assert.Same(t, prog, got)
}

func TestCompiledCache_ConcurrentCallersDedup(t *testing.T) {
	cache := NewCompiledCache()
	prog := trivialProgram(t)
	var calls int32

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetOrCompile("cisco_ios", "show_version", func() (*textfsm.Program, error) {
				atomic.AddInt32(&calls, 1)
				return prog, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "compileFn must run exactly once across concurrent callers racing the same key")
}
