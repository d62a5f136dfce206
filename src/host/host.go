// Package host defines the boundary between the pipeline and the
// application that owns the live scene. Everything behind these interfaces
// runs on the host's single safe-mutation thread; nothing in this module
// touches host state from anywhere else.
package host

// TimerFunc is a cooperative poll callback. The scheduler keeps invoking it
// until it returns false.
type TimerFunc func() bool

// Scheduler registers poll callbacks with the host's own event loop. The
// host invokes them on the safe-mutation thread when it is idle.
type Scheduler interface {
	Register(fn TimerFunc)
}

// Executor runs a validated script against live host state. Implementations
// must only ever be driven from the safe-mutation thread; the pipeline
// guarantees it never calls Execute from a background worker.
//
// The textual denylist applied before code reaches an Executor is a coarse
// filter, not a security boundary. A stricter host can substitute a
// restricted interpreter or an out-of-process runner here without touching
// the rest of the pipeline.
type Executor interface {
	Execute(code string) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(code string) error

func (f ExecutorFunc) Execute(code string) error { return f(code) }
