// Package handoff carries validated code from background workers to the one
// thread allowed to mutate host state.
//
// Workers enqueue from any goroutine; the host scheduler drains through a
// cooperative poll callback on the safe-mutation thread. No other path from
// worker to host exists, and none may be added: host mutation APIs are not
// thread-safe.
package handoff

import (
	"fmt"
	"log"
	"sync"

	"github.com/blendpilot/blendpilot/src/host"
)

// State of the queue's drain cycle.
type State int

const (
	// StateIdle: nothing has ever been queued.
	StateIdle State = iota
	// StateDraining: artifacts are queued and a drain is pending or running.
	StateDraining
	// StateDrained: the last drain emptied the queue; the poll callback has
	// told the scheduler it is done. Re-arming is the producer's job.
	StateDrained
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraining:
		return "draining"
	case StateDrained:
		return "drained"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Queue is an unbounded FIFO of validated code artifacts. Many producers,
// one consumer: the drain callback.
type Queue struct {
	exec   host.Executor
	notify func(string)

	mu    sync.Mutex
	items []string
	state State
	armed bool
}

// New creates a queue that executes drained artifacts with exec. notify, if
// non-nil, receives per-phase status text during a drain.
func New(exec host.Executor, notify func(string)) *Queue {
	q := &Queue{exec: exec, notify: notify}
	if q.notify == nil {
		q.notify = func(string) {}
	}
	return q
}

// Enqueue adds one artifact. Safe to call from any goroutine.
func (q *Queue) Enqueue(code string) {
	q.mu.Lock()
	q.items = append(q.items, code)
	q.state = StateDraining
	q.mu.Unlock()
}

// Arm registers the drain callback with the host scheduler unless a
// registration is already outstanding. Producers call this after Enqueue.
func (q *Queue) Arm(s host.Scheduler) {
	q.mu.Lock()
	if q.armed {
		q.mu.Unlock()
		return
	}
	q.armed = true
	q.mu.Unlock()
	s.Register(q.poll)
}

// poll is the drain callback. It runs on the safe-mutation thread, executes
// artifacts until the queue is empty, and then reports completion so the
// scheduler drops it. Invoking it again on an empty queue is a no-op.
func (q *Queue) poll() bool {
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			if q.state == StateDraining {
				q.state = StateDrained
			}
			q.armed = false
			q.mu.Unlock()
			return false
		}
		code := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		q.run(code)
	}
}

// run executes one artifact. A failure is logged together with the failing
// code and must not stop later artifacts, nor escape into the host loop.
func (q *Queue) run(code string) {
	defer func() {
		if r := recover(); r != nil {
			q.notify(fmt.Sprintf("Execution Error: %v", r))
			log.Printf("[Handoff] executor panic: %v\nFailed Code:\n%s", r, code)
		}
	}()

	q.notify("Executing Code...")
	if err := q.exec.Execute(code); err != nil {
		q.notify(fmt.Sprintf("Execution Error: %v", err))
		log.Printf("[Handoff] execution failed: %v\nFailed Code:\n%s", err, code)
		return
	}
	q.notify("Done! Scene updated.")
}

// Len reports how many artifacts are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// State reports where the queue is in its drain cycle.
func (q *Queue) CurrentState() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}
