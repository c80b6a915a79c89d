// Package atomic_float provides a lock-free counter used by the Monte
// Carlo harness to accumulate per-square landing counts across worker
// goroutines.
package atomic_float

import "sync/atomic"

// AtomicInt64 encapsulates an int64 counter for non-locking concurrent
// accumulation. The original version of this type CAS-looped over a
// float64's bit pattern via unsafe.Pointer; landing counts are integers,
// so this version rests on sync/atomic.Int64 and drops the unsafe
// mechanics entirely.
type AtomicInt64 struct {
	val atomic.Int64
}

// NewAtomicInt64 encapsulates an int64 for atomic operations.
func NewAtomicInt64(val int64) *AtomicInt64 {
	a := &AtomicInt64{}
	a.val.Store(val)
	return a
}

// AtomicRead atomically reads the counter.
func (a *AtomicInt64) AtomicRead() int64 {
	return a.val.Load()
}

// AtomicAdd atomically adds addend and returns the resulting value.
func (a *AtomicInt64) AtomicAdd(addend int64) int64 {
	return a.val.Add(addend)
}

// AtomicSet atomically sets the counter to newVal.
func (a *AtomicInt64) AtomicSet(newVal int64) {
	a.val.Store(newVal)
}
