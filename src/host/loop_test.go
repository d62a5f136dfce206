package host

import (
	"sync"
	"testing"
)

func TestLoopRunsOneShotCallbacks(t *testing.T) {
	loop := NewLoop()
	var ran int
	loop.Register(func() bool { ran++; return false })
	loop.Register(func() bool { ran++; return false })

	if n := loop.Tick(); n != 0 {
		t.Fatalf("Tick left %d pending, want 0", n)
	}
	if ran != 2 {
		t.Fatalf("ran = %d, want 2", ran)
	}
}

func TestLoopRequeuesRepeatingCallback(t *testing.T) {
	loop := NewLoop()
	count := 0
	loop.Register(func() bool {
		count++
		return count < 3
	})

	loop.Drain()
	if count != 3 {
		t.Fatalf("callback ran %d times, want 3", count)
	}
}

func TestLoopRegistrationDuringTick(t *testing.T) {
	loop := NewLoop()
	var inner bool
	loop.Register(func() bool {
		loop.Register(func() bool { inner = true; return false })
		return false
	})

	loop.Drain()
	if !inner {
		t.Fatalf("callback registered during a tick never ran")
	}
}

func TestLoopConcurrentRegistration(t *testing.T) {
	loop := NewLoop()
	var mu sync.Mutex
	ran := 0

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Register(func() bool {
				mu.Lock()
				ran++
				mu.Unlock()
				return false
			})
		}()
	}
	wg.Wait()
	loop.Drain()

	if ran != 30 {
		t.Fatalf("ran = %d, want 30", ran)
	}
}
