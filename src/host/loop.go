package host

import "sync"

// Loop is a single-goroutine cooperative scheduler. It stands in for a real
// host event loop: callbacks registered from any goroutine run only inside
// Tick, which the owner calls from the one goroutine that plays the role of
// the safe-mutation thread.
type Loop struct {
	mu      sync.Mutex
	pending []TimerFunc
}

func NewLoop() *Loop {
	return &Loop{}
}

// Register queues fn for execution on the loop goroutine. Safe to call from
// any goroutine.
func (l *Loop) Register(fn TimerFunc) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Tick runs every registered callback once, re-queueing the ones that ask to
// run again. It returns the number of callbacks still pending. Must be
// called from the loop goroutine only.
func (l *Loop) Tick() int {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	var keep []TimerFunc
	for _, fn := range batch {
		if fn() {
			keep = append(keep, fn)
		}
	}

	l.mu.Lock()
	// Callbacks registered during the batch land after the re-queued ones.
	l.pending = append(keep, l.pending...)
	n := len(l.pending)
	l.mu.Unlock()
	return n
}

// Drain ticks until no callbacks remain pending.
func (l *Loop) Drain() {
	for l.Tick() > 0 {
	}
}

var _ Scheduler = (*Loop)(nil)
