// Package history keeps the in-memory Q&A conversation log. It lives for
// the process and is never persisted.
package history

import "sync"

// Entry is one question/answer exchange.
type Entry struct {
	Question string
	Answer   string
}

// Log is an append-only conversation log, safe for concurrent writers.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Append records one exchange.
func (l *Log) Append(question, answer string) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Question: question, Answer: answer})
	l.mu.Unlock()
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len reports the number of recorded exchanges.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear empties the log. In-flight workers are unaffected; their answers
// simply land in a fresh log.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}
