package handles

import (
	"sync"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	type source struct {
		Name string
		Next float64
	}

	src := &source{Name: "main", Next: 0.5}
	handle := Register(src)

	if handle == 0 {
		t.Error("Register should return non-zero handle")
	}

	got := Lookup(handle)
	if got == nil {
		t.Error("Lookup should return non-nil value")
	}

	gotSrc, ok := got.(*source)
	if !ok {
		t.Errorf("Lookup returned wrong type: %T", got)
	}

	if gotSrc.Name != "main" || gotSrc.Next != 0.5 {
		t.Errorf("Lookup returned wrong data: %+v", gotSrc)
	}

	Unregister(handle)
}

func TestUnregister(t *testing.T) {
	handle := Register("state")

	if Lookup(handle) == nil {
		t.Error("Expected value before Unregister")
	}

	Unregister(handle)

	if Lookup(handle) != nil {
		t.Error("Expected nil after Unregister")
	}
}

func TestLookupNonExistent(t *testing.T) {
	got := Lookup(999999)
	if got != nil {
		t.Error("Lookup of non-existent handle should return nil")
	}
}

func TestCountBalances(t *testing.T) {
	before := Count()

	ids := make([]uintptr, 10)
	for i := range ids {
		ids[i] = Register(i)
	}
	if got := Count(); got != before+len(ids) {
		t.Errorf("Count after registering = %d, want %d", got, before+len(ids))
	}

	for _, id := range ids {
		Unregister(id)
	}
	if got := Count(); got != before {
		t.Errorf("Count after unregistering = %d, want %d", got, before)
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				data := struct {
					ID  int
					Seq int
				}{id, j}
				handle := Register(&data)
				got := Lookup(handle)
				if got == nil {
					t.Errorf("Lookup returned nil for handle %d", handle)
				}
				Unregister(handle)
			}
		}(i)
	}

	wg.Wait()
}

func TestHandlesAreUnique(t *testing.T) {
	seen := make(map[uintptr]bool)

	for i := 0; i < 1000; i++ {
		h := Register(i)
		if seen[h] {
			t.Errorf("Handle %d was returned twice", h)
		}
		seen[h] = true
	}

	for h := range seen {
		Unregister(h)
	}
}
