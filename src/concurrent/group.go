// Package concurrent tracks the background workers the dispatcher spawns.
package concurrent

import "sync"

// Group runs one goroutine per submitted task, unbounded. The host loop
// never waits on it; Wait exists for tests and orderly demo shutdown. An
// abandoned worker simply finishes into nothing.
type Group struct {
	wg sync.WaitGroup
}

func NewGroup() *Group {
	return &Group{}
}

// Go runs fn on its own goroutine.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		fn()
	}()
}

// Wait blocks until every spawned worker has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
