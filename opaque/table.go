package opaque

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("opaque table closed")

// Handle is the numeric reference the guest runtime holds for a parked
// payload. Handle 0 is reserved and always invalid.
type Handle uint32

// Dropper is optionally implemented by payloads that need cleanup when the
// last reference is released.
type Dropper interface {
	Drop()
}

// Table parks payloads of type T and issues handles for them. It is an
// in-memory slab with a free list; handles of removed payloads are reused.
type Table[T any] struct {
	entries  []entry[T]
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry[T any] struct {
	value    T
	refCount uint32
	valid    bool
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries:  make([]entry[T], 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Wrap parks a payload and returns a Ref holding the only reference to it.
func (t *Table[T]) Wrap(value T) Ref[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return Ref[T]{}
	}

	e := entry[T]{value: value, refCount: 1, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return Ref[T]{table: t, handle: handle}
	}

	t.entries = append(t.entries, e)
	return Ref[T]{table: t, handle: Handle(len(t.entries))}
}

// Get retrieves the payload for a handle.
func (t *Table[T]) Get(handle Handle) (T, bool) {
	var zero T
	if handle == 0 {
		return zero, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return zero, false
	}

	e := t.entries[idx]
	if !e.valid {
		return zero, false
	}
	return e.value, true
}

// Len returns the number of parked payloads.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all parked payloads.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.value) {
				break
			}
		}
	}
}

// Close drops every payload and stops accepting new ones.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for i := range t.entries {
		if t.entries[i].valid {
			if d, ok := any(t.entries[i].value).(Dropper); ok {
				d.Drop()
			}
			t.entries[i] = entry[T]{}
		}
	}

	t.entries = nil
	t.freeList = nil
	return nil
}

// retain increments the reference count for a handle.
func (t *Table[T]) retain(handle Handle) bool {
	if handle == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return false
	}

	e := &t.entries[idx]
	if !e.valid {
		return false
	}

	e.refCount++
	return true
}

// release decrements the reference count and removes the payload when the
// last reference goes. Returns the payload and true when it was removed.
func (t *Table[T]) release(handle Handle) (T, bool) {
	var zero T
	if handle == 0 {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return zero, false
	}

	e := &t.entries[idx]
	if !e.valid || e.refCount == 0 {
		return zero, false
	}

	e.refCount--
	if e.refCount > 0 {
		return zero, false
	}

	value := e.value
	*e = entry[T]{}
	t.freeList = append(t.freeList, handle)
	return value, true
}
