// Package dedupe remembers keys that were already emitted.
package dedupe

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type Backend interface {
	// Seen adds elem to the backend and reports whether it was present before
	Seen(elem string) bool
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// NewBackend returns an in-memory backend for inputs up to
// MaxInMemoryDedupeSize and a disk backed one otherwise
// Note: If byteLen is not correct/specified memory usage may grow unbounded
func NewBackend(byteLen int) Backend {
	if byteLen <= MaxInMemoryDedupeSize {
		return NewMapBackend()
	}
	return NewLevelDBBackend()
}
