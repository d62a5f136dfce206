package models

import (
	"context"
	"testing"
	"time"
)

func TestCachedGeneratorMemoizes(t *testing.T) {
	inner := NewDummyGenerator("answer")
	cached := NewCachedGenerator(inner, 8, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := cached.Generate(context.Background(), ModeQA, "sys", "question")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got != "answer" {
			t.Fatalf("unexpected response: %q", got)
		}
	}
	if inner.Calls() != 1 {
		t.Fatalf("inner called %d times, want 1", inner.Calls())
	}
}

func TestCachedGeneratorKeyCoversModeAndPrompts(t *testing.T) {
	inner := NewDummyGenerator("answer")
	cached := NewCachedGenerator(inner, 8, time.Minute)

	ctx := context.Background()
	if _, err := cached.Generate(ctx, ModeQA, "sys", "question"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Different mode, different snapshot, different question: all miss.
	if _, err := cached.Generate(ctx, ModeCode, "sys", "question"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := cached.Generate(ctx, ModeQA, "sys2", "question"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := cached.Generate(ctx, ModeQA, "sys", "question2"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if inner.Calls() != 4 {
		t.Fatalf("inner called %d times, want 4", inner.Calls())
	}
}

func TestTryCreateCachedDisabledByDefault(t *testing.T) {
	t.Setenv("BLENDPILOT_CACHE_SIZE", "")
	gen := NewDummyGenerator("x")
	if got := TryCreateCached(gen); got != Generator(gen) {
		t.Fatalf("caching enabled without configuration")
	}
}

func TestTryCreateCachedEnabledByEnv(t *testing.T) {
	t.Setenv("BLENDPILOT_CACHE_SIZE", "16")
	gen := NewDummyGenerator("x")
	if _, ok := TryCreateCached(gen).(*CachedGenerator); !ok {
		t.Fatalf("expected a CachedGenerator wrapper")
	}
}
