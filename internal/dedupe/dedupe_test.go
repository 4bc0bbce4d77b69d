package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackends(t *testing.T) {
	backends := map[string]Backend{
		"map":     NewMapBackend(),
		"leveldb": NewLevelDBBackend(),
	}
	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			defer backend.Cleanup()
			require.False(t, backend.Seen("a"))
			require.False(t, backend.Seen("b"))
			require.True(t, backend.Seen("a"))
			require.True(t, backend.Seen("b"))
			require.False(t, backend.Seen("c"))
		})
	}
}

func TestNewBackend(t *testing.T) {
	backend := NewBackend(1024)
	defer backend.Cleanup()
	_, ok := backend.(*MapBackend)
	require.True(t, ok)
}
