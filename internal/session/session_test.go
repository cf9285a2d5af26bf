package session

import (
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestNext_Format(t *testing.T) {
	g := New()

	id := g.Next()
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("id %q: expected 3 dash-separated parts, got %d", id, len(parts))
	}
	if parts[0] != "sess" {
		t.Errorf("id %q: prefix = %q, want %q", id, parts[0], "sess")
	}
	if parts[1] != "1" {
		t.Errorf("id %q: first counter = %q, want %q", id, parts[1], "1")
	}
	if len(parts[2]) != 8 {
		t.Errorf("id %q: random fragment length = %d, want 8", id, len(parts[2]))
	}
}

func TestNext_CounterIncrements(t *testing.T) {
	g := New()

	for i := 1; i <= 5; i++ {
		id := g.Next()
		if got := strings.Split(id, "-")[1]; got != strconv.Itoa(i) {
			t.Errorf("id %d: counter = %q, want %q", i, got, strconv.Itoa(i))
		}
	}
}

func TestNext_Unique(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestNext_Concurrent(t *testing.T) {
	g := New()

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.Next()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("generated %d unique ids, want %d", len(seen), workers*perWorker)
	}
}
