// Package assistant turns natural-language requests against a live 3D scene
// into validated, safely deferred scene code, or into conversational answers
// about the scene.
//
// The submission path runs on the host's safe-mutation thread; everything
// after it runs on per-request background workers. Validated code comes back
// to the host only through the handoff queue's cooperative drain.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blendpilot/blendpilot/src/concurrent"
	"github.com/blendpilot/blendpilot/src/handoff"
	"github.com/blendpilot/blendpilot/src/history"
	"github.com/blendpilot/blendpilot/src/host"
	"github.com/blendpilot/blendpilot/src/models"
	"github.com/blendpilot/blendpilot/src/sanitize"
	"github.com/blendpilot/blendpilot/src/scene"
	"github.com/blendpilot/blendpilot/src/status"
)

// Request is one user submission: immutable, consumed by exactly one worker,
// discarded afterwards. The scene context is captured at construction time
// on the safe-mutation thread; workers never read the scene again.
type Request struct {
	Mode         models.Mode
	Text         string
	Selector     models.Selector
	SceneContext string
	Stats        scene.Stats
}

// GeneratorResolver turns a resolved selector into a backend strategy.
type GeneratorResolver func(ctx context.Context, sel models.Selector) (models.Generator, error)

// Options configure a new Assistant.
type Options struct {
	Scene     scene.Scene
	Scheduler host.Scheduler
	Executor  host.Executor
	// Resolver defaults to models.NewGenerator.
	Resolver GeneratorResolver
}

// Assistant owns the pipeline's singleton services: the handoff queue, the
// status sink, and the conversation log. Create one at startup and keep it
// for the process lifetime.
type Assistant struct {
	scene   scene.Scene
	sched   host.Scheduler
	queue   *handoff.Queue
	sink    *status.Sink
	log     *history.Log
	workers *concurrent.Group
	resolve GeneratorResolver
}

// New creates an Assistant with the provided options.
func New(opts Options) (*Assistant, error) {
	if opts.Scene == nil {
		return nil, errors.New("assistant requires a scene")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("assistant requires a host scheduler")
	}
	if opts.Executor == nil {
		return nil, errors.New("assistant requires a host executor")
	}

	resolve := opts.Resolver
	if resolve == nil {
		resolve = models.NewGenerator
	}

	sink := status.NewSink(opts.Scheduler)
	return &Assistant{
		scene:   opts.Scene,
		sched:   opts.Scheduler,
		queue:   handoff.New(opts.Executor, sink.SetStatus),
		sink:    sink,
		log:     history.NewLog(),
		workers: concurrent.NewGroup(),
		resolve: resolve,
	}, nil
}

// Submit accepts one request. Call from the safe-mutation thread only: the
// scene snapshot is captured synchronously here, before the worker starts.
// Submit returns as soon as the worker is spawned.
func (a *Assistant) Submit(mode models.Mode, selector, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("empty prompt")
	}

	req := Request{
		Mode:         mode,
		Text:         text,
		Selector:     models.ParseSelector(selector),
		SceneContext: scene.Describe(a.scene),
		Stats:        scene.Statistics(a.scene),
	}

	switch mode {
	case models.ModeCode:
		a.sink.SetStatus("Reading scene...")
		a.workers.Go(func() { a.runCodeWorker(req) })
	case models.ModeQA:
		a.sink.SetStatus("Analyzing scene...")
		a.sink.SetResponse("")
		a.workers.Go(func() { a.runQAWorker(req) })
	default:
		return fmt.Errorf("unknown mode: %v", mode)
	}
	return nil
}

// runCodeWorker generates, validates, and enqueues scene code. Every failure
// short-circuits before anything is queued; the scene stays untouched and
// the user sees only a status message.
func (a *Assistant) runCodeWorker(req Request) {
	ctx := context.Background()
	a.sink.SetStatus("Analyzing scene and generating code...")

	out, err := a.generate(ctx, req, codeSystemPrompt(req.SceneContext), codeUserMessage(req.Text))
	if err != nil {
		a.sink.SetStatus(fmt.Sprintf("Error during generation: %v", err))
		return
	}

	a.sink.SetStatus("Processing code...")
	code := sanitize.ExtractAndValidate(out)
	if code == "" {
		a.sink.SetStatus("Error: No valid code generated. Check log for details.")
		return
	}

	a.queue.Enqueue(code)
	a.queue.Arm(a.sched)
}

// runQAWorker answers a question about the scene. QA has no "nothing
// happened" state, so a failure surfaces its error text as the answer.
func (a *Assistant) runQAWorker(req Request) {
	ctx := context.Background()
	a.sink.SetStatus("Analyzing scene and preparing answer...")

	answer, err := a.generate(ctx, req, qaSystemPrompt,
		qaUserMessage(req.SceneContext, req.Stats.Summary(), req.Text))
	if err != nil {
		answer = fmt.Sprintf("Error: %v", err)
	}

	a.log.Append(req.Text, answer)
	a.sink.SetResponse(answer)
	a.sink.SetStatus("Answer ready!")
}

func (a *Assistant) generate(ctx context.Context, req Request, systemPrompt, userPrompt string) (string, error) {
	gen, err := a.resolve(ctx, req.Selector)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, req.Mode, systemPrompt, userPrompt)
}

// ClearHistory empties the conversation log and resets the visible answer.
// In-flight workers keep running; their results land in the cleared state.
func (a *Assistant) ClearHistory() {
	a.log.Clear()
	a.sink.SetResponse("")
	a.sink.SetStatus("History cleared. Ready.")
}

// SceneInfo renders the detailed statistics report. Safe-mutation thread
// only, like every scene read.
func (a *Assistant) SceneInfo() string {
	return scene.Statistics(a.scene).Report()
}

// Sink exposes the status/response channel for the UI layer.
func (a *Assistant) Sink() *status.Sink { return a.sink }

// History exposes the conversation log for the UI layer.
func (a *Assistant) History() *history.Log { return a.log }

// Wait blocks until all spawned workers have finished. The host loop never
// calls this; it exists for tests and orderly demo shutdown.
func (a *Assistant) Wait() { a.workers.Wait() }
