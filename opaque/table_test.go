package opaque

import (
	"sync"
	"testing"
)

type dropTracker struct {
	mu      sync.Mutex
	dropped int
}

func (d *dropTracker) Drop() {
	d.mu.Lock()
	d.dropped++
	d.mu.Unlock()
}

func (d *dropTracker) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

func TestTableWrapGet(t *testing.T) {
	table := NewTable[string]()

	ref := table.Wrap("payload")
	if !ref.IsValid() {
		t.Fatal("ref should be valid after Wrap")
	}
	if ref.Handle() == 0 {
		t.Fatal("Wrap issued handle 0")
	}

	got, ok := ref.Get()
	if !ok || got != "payload" {
		t.Errorf("Get() = %q, %v, want %q, true", got, ok, "payload")
	}

	byHandle, ok := table.Get(ref.Handle())
	if !ok || byHandle != "payload" {
		t.Errorf("table.Get(%d) = %q, %v, want payload", ref.Handle(), byHandle, ok)
	}
}

func TestTableInvalidHandle(t *testing.T) {
	table := NewTable[int]()
	table.Wrap(1)

	tests := []struct {
		name   string
		handle Handle
	}{
		{"zero", 0},
		{"out of range", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := table.Get(tt.handle); ok {
				t.Errorf("Get(%d) succeeded, want miss", tt.handle)
			}
		})
	}
}

func TestZeroRef(t *testing.T) {
	var ref Ref[int]

	if ref.IsValid() {
		t.Error("zero Ref reports valid")
	}
	if _, ok := ref.Get(); ok {
		t.Error("zero Ref Get succeeded")
	}
	if clone := ref.Clone(); clone.IsValid() {
		t.Error("clone of zero Ref reports valid")
	}
	ref.Drop() // must not panic
}

func TestRefCounting(t *testing.T) {
	table := NewTable[*dropTracker]()
	tracker := &dropTracker{}

	ref := table.Wrap(tracker)
	clone := ref.Clone()
	if !clone.IsValid() {
		t.Fatal("clone should be valid")
	}
	if clone.Handle() != ref.Handle() {
		t.Errorf("clone handle = %d, want %d", clone.Handle(), ref.Handle())
	}

	ref.Drop()
	if tracker.count() != 0 {
		t.Error("payload dropped while a reference remains")
	}
	if !clone.IsValid() {
		t.Error("payload removed while a reference remains")
	}

	clone.Drop()
	if tracker.count() != 1 {
		t.Errorf("dropped %d times, want 1", tracker.count())
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d after final drop, want 0", table.Len())
	}
}

func TestDoubleDrop(t *testing.T) {
	table := NewTable[*dropTracker]()
	tracker := &dropTracker{}

	ref := table.Wrap(tracker)
	ref.Drop()
	ref.Drop() // second drop is a no-op

	if tracker.count() != 1 {
		t.Errorf("dropped %d times, want 1", tracker.count())
	}
}

func TestHandleReuse(t *testing.T) {
	table := NewTable[int]()

	first := table.Wrap(1)
	handle := first.Handle()
	first.Drop()

	second := table.Wrap(2)
	if second.Handle() != handle {
		t.Errorf("freed handle not reused: got %d, want %d", second.Handle(), handle)
	}

	got, ok := second.Get()
	if !ok || got != 2 {
		t.Errorf("reused handle Get() = %d, %v, want 2, true", got, ok)
	}
}

func TestTableLenEach(t *testing.T) {
	table := NewTable[int]()
	refs := []Ref[int]{table.Wrap(10), table.Wrap(20), table.Wrap(30)}
	refs[1].Drop()

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	seen := map[int]bool{}
	table.Each(func(h Handle, v int) bool {
		seen[v] = true
		return true
	})
	if !seen[10] || !seen[30] || seen[20] {
		t.Errorf("Each visited %v, want 10 and 30 only", seen)
	}
}

func TestTableClose(t *testing.T) {
	table := NewTable[*dropTracker]()
	tracker := &dropTracker{}
	ref := table.Wrap(tracker)

	if err := table.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if tracker.count() != 1 {
		t.Errorf("Close dropped payload %d times, want 1", tracker.count())
	}
	if ref.IsValid() {
		t.Error("ref valid after Close")
	}

	if closed := table.Wrap(&dropTracker{}); closed.IsValid() {
		t.Error("Wrap after Close returned a valid ref")
	}

	// Close is idempotent.
	if err := table.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestTableConcurrentWrap(t *testing.T) {
	table := NewTable[int]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			ref := table.Wrap(v)
			got, ok := ref.Get()
			if !ok || got != v {
				t.Errorf("Get() = %d, %v, want %d", got, ok, v)
			}
		}(i)
	}
	wg.Wait()

	if table.Len() != 32 {
		t.Errorf("Len() = %d, want 32", table.Len())
	}
}
