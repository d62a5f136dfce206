// Package status is the process-wide channel for progress and answer text.
package status

import (
	"log"
	"sync"

	"github.com/blendpilot/blendpilot/src/host"
)

// Sink holds the latest status line and the latest Q&A answer. Writers may
// be concurrent background workers; each write is scheduled as a one-shot
// assignment on the host's safe-mutation thread, and the last write
// observed there wins. There is no acknowledgement and no cross-writer
// ordering guarantee.
type Sink struct {
	sched host.Scheduler

	mu       sync.Mutex
	status   string
	response string
}

func NewSink(sched host.Scheduler) *Sink {
	return &Sink{sched: sched, status: "Ready. Select a mode to begin."}
}

// SetStatus schedules a status update. Fire and forget.
func (s *Sink) SetStatus(text string) {
	log.Printf("[Status] %s", text)
	s.sched.Register(func() bool {
		s.mu.Lock()
		s.status = text
		s.mu.Unlock()
		return false
	})
}

// SetResponse schedules an answer update. Fire and forget.
func (s *Sink) SetResponse(text string) {
	s.sched.Register(func() bool {
		s.mu.Lock()
		s.response = text
		s.mu.Unlock()
		return false
	})
}

// Status returns the last applied status line.
func (s *Sink) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Response returns the last applied answer.
func (s *Sink) Response() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response
}
