package models

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// DummyGenerator is a lightweight Generator for local testing without API
// calls. It replays a canned response (or echoes the last prompt line) and
// records the prompts it was given.
type DummyGenerator struct {
	// Response, when non-empty, is returned verbatim for every call.
	Response string
	// Err, when non-nil, is returned instead of any text.
	Err error

	mu         sync.Mutex
	calls      int
	lastMode   Mode
	lastSystem string
	lastUser   string
}

func NewDummyGenerator(response string) *DummyGenerator {
	return &DummyGenerator{Response: response}
}

func (d *DummyGenerator) Generate(_ context.Context, mode Mode, systemPrompt, userPrompt string) (string, error) {
	d.mu.Lock()
	d.calls++
	d.lastMode = mode
	d.lastSystem = systemPrompt
	d.lastUser = userPrompt
	d.mu.Unlock()

	if d.Err != nil {
		return "", d.Err
	}
	if d.Response != "" {
		return d.Response, nil
	}

	lines := strings.Split(userPrompt, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if candidate := strings.TrimSpace(lines[i]); candidate != "" {
			return fmt.Sprintf("Dummy response: %s", candidate), nil
		}
	}
	return "Dummy response: <empty prompt>", nil
}

// Calls reports how many times Generate ran.
func (d *DummyGenerator) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// LastPrompts returns the mode, system prompt, and user prompt of the most
// recent call.
func (d *DummyGenerator) LastPrompts() (Mode, string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastMode, d.lastSystem, d.lastUser
}

var _ Generator = (*DummyGenerator)(nil)
