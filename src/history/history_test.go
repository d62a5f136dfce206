package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestLogAppendAndClear(t *testing.T) {
	l := NewLog()
	l.Append("how many lights?", "Two.")
	l.Append("what is at the origin?", "The default cube.")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Question != "how many lights?" || entries[0].Answer != "Two." {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("log not cleared, len = %d", l.Len())
	}
}

func TestLogConcurrentAppends(t *testing.T) {
	l := NewLog()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
		}(i)
	}
	wg.Wait()

	if l.Len() != 50 {
		t.Fatalf("len = %d, want 50", l.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Append("q", "a")
	entries := l.Entries()
	entries[0].Answer = "mutated"
	if l.Entries()[0].Answer != "a" {
		t.Fatalf("caller mutation leaked into the log")
	}
}
