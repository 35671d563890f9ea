package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestPool_ExecuteAll(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestPool_ExecuteAll_MoreWorkThanQueue(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)
	work := make([]func(), 500)
	for i := range work {
		work[i] = func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}
	}

	pool.ExecuteAll(work)

	if len(seen) != 500 {
		t.Errorf("ran %d distinct items, want 500", len(seen))
	}
}

func TestPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil)
}

func TestPool_ExecuteAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("closed pool ran %d items, want 2", ran)
	}
}

func TestPool_CloseDuringExecute(t *testing.T) {
	for range 50 {
		pool := NewPool(4)

		var ran atomic.Int64
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			for range 20 {
				pool.Range(64, func(lo, hi int) {
					ran.Add(int64(hi - lo))
				})
			}
		}()
		pool.Close()

		select {
		case <-finished:
		case <-time.After(10 * time.Second):
			t.Fatal("Range did not return after Close")
		}
		if got := ran.Load(); got != 20*64 {
			t.Fatalf("ran %d indices, want %d", got, 20*64)
		}
	}
}

// =============================================================================
// Range Tests
// =============================================================================

func TestPool_Range(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	hits := make([]atomic.Int32, 100)
	pool.Range(len(hits), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			hits[i].Add(1)
		}
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}

	pool.Range(0, func(lo, hi int) {
		t.Error("Range(0) must not call fn")
	})
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []Span
	}{
		{"even", 9, 3, []Span{{0, 3}, {3, 6}, {6, 9}}},
		{"remainder", 10, 3, []Span{{0, 4}, {4, 7}, {7, 10}}},
		{"more parts than items", 2, 8, []Span{{0, 1}, {1, 2}}},
		{"zero parts", 4, 0, []Span{{0, 4}}},
		{"empty", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.n, tt.parts)
			if len(got) != len(tt.want) {
				t.Fatalf("Spans(%d, %d) = %v, want %v", tt.n, tt.parts, got, tt.want)
			}
			total := 0
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
				}
				total += got[i].Len()
			}
			if total != tt.n {
				t.Errorf("spans cover %d indices, want %d", total, tt.n)
			}
		})
	}
}
