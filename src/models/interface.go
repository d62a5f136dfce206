// Package models adapts the pipeline's single generation contract onto the
// concrete language-model backends.
package models

import (
	"context"
	"errors"
)

// Mode selects the sampling profile for a request. It is resolved once when
// the request is built and never re-interpreted downstream.
type Mode int

const (
	// ModeCode asks for executable scene code; low temperature.
	ModeCode Mode = iota
	// ModeQA asks for a conversational answer; higher temperature.
	ModeQA
)

func (m Mode) String() string {
	if m == ModeQA {
		return "qa"
	}
	return "code"
}

// Every strategy caps output length and pins temperature per mode; hosted
// backends apply them always, the local backend only for cloud-hosted
// variants (which have no usable defaults of their own).
const (
	maxOutputTokens = 2048
	codeTemperature = 0.1
	qaTemperature   = 0.7
)

func temperatureFor(mode Mode) float64 {
	if mode == ModeQA {
		return qaTemperature
	}
	return codeTemperature
}

// Generator is the uniform call contract over all backends: a two-message
// system + user exchange producing one text completion.
//
// Implementations never panic. Failures come back as errors wrapping either
// ErrTransport (could not reach the backend) or ErrResponse (backend
// reachable, response unusable), so callers can report the two cases apart.
type Generator interface {
	Generate(ctx context.Context, mode Mode, systemPrompt, userPrompt string) (string, error)
}

var (
	// ErrTransport tags network, auth, and rate-limit failures.
	ErrTransport = errors.New("provider transport failure")
	// ErrResponse tags malformed, empty, or unexpected backend responses.
	ErrResponse = errors.New("provider returned invalid response")
)
