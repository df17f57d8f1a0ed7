package retrieval

import "sync/atomic"

// indexLock provides non-blocking lock semantics using atomic operations.
// Indexing batches must not overlap; concurrent callers fail fast instead
// of queueing.
type indexLock struct {
	state atomic.Int32 // 0 = unlocked, 1 = locked
}

// tryAcquire attempts to acquire the lock without blocking.
// Returns true if the lock was successfully acquired, false otherwise.
func (l *indexLock) tryAcquire() bool {
	return l.state.CompareAndSwap(0, 1)
}

// release releases the lock.
// Must only be called by the goroutine that successfully acquired the lock.
func (l *indexLock) release() {
	l.state.Store(0)
}
