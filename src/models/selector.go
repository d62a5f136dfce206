package models

import (
	"context"
	"fmt"
	"strings"
)

// Backend identifies a provider strategy.
type Backend int

const (
	BackendOpenAI Backend = iota
	BackendAnthropic
	BackendGemini
	BackendLocal
)

func (b Backend) String() string {
	switch b {
	case BackendOpenAI:
		return "openai"
	case BackendAnthropic:
		return "anthropic"
	case BackendGemini:
		return "gemini"
	case BackendLocal:
		return "local"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Variant distinguishes plain local models from cloud-hosted ones, which
// need explicit sampling options passed on every call.
type Variant int

const (
	VariantStandard Variant = iota
	VariantCloudHosted
)

// Selector is the resolved form of the user's model choice: a tagged
// variant, decided once at request construction.
type Selector struct {
	Backend Backend
	Model   string
	Variant Variant
}

// Hosted sentinels accepted from the model picker.
const (
	SentinelOpenAI    = "chatgpt"
	SentinelAnthropic = "claude"
	SentinelGemini    = "gemini"
)

// Default hosted model names.
const (
	openAIModel    = "gpt-4o"
	anthropicModel = "claude-3-5-sonnet-latest"
	geminiModel    = "gemini-1.5-pro"
)

// CloudModels are the known cloud-hosted identifiers served through the
// local endpoint.
var CloudModels = []string{
	"qwen3-coder:480b-cloud",
	"gpt-oss:120b-cloud",
	"gpt-oss:20b-cloud",
	"deepseek-v3.1:671b-cloud",
}

// IsCloudModel reports whether name is a cloud-hosted variant, either by
// exact match or by the "-cloud" suffix convention.
func IsCloudModel(name string) bool {
	for _, m := range CloudModels {
		if name == m {
			return true
		}
	}
	return strings.HasSuffix(name, "-cloud")
}

// ParseSelector resolves a raw model identifier from the picker. Hosted
// sentinels map to their backends with fixed model names; everything else
// is a local identifier, classified as cloud-hosted or standard.
func ParseSelector(raw string) Selector {
	switch raw {
	case SentinelOpenAI:
		return Selector{Backend: BackendOpenAI, Model: openAIModel}
	case SentinelAnthropic:
		return Selector{Backend: BackendAnthropic, Model: anthropicModel}
	case SentinelGemini:
		return Selector{Backend: BackendGemini, Model: geminiModel}
	}
	sel := Selector{Backend: BackendLocal, Model: raw}
	if IsCloudModel(raw) {
		sel.Variant = VariantCloudHosted
	}
	return sel
}

// NewGenerator returns the concrete strategy for a selector. The result is
// wrapped in the response cache when caching is enabled by environment.
func NewGenerator(ctx context.Context, sel Selector) (Generator, error) {
	var (
		gen Generator
		err error
	)
	switch sel.Backend {
	case BackendOpenAI:
		gen = NewOpenAIGenerator(sel.Model)
	case BackendAnthropic:
		gen = NewAnthropicGenerator(sel.Model)
	case BackendGemini:
		gen, err = NewGeminiGenerator(ctx, sel.Model)
	case BackendLocal:
		gen, err = NewLocalGenerator(sel.Model, sel.Variant)
	default:
		return nil, fmt.Errorf("unknown backend: %v", sel.Backend)
	}
	if err != nil {
		return nil, err
	}
	return TryCreateCached(gen), nil
}

// Catalog lists the selectable model identifiers: the hosted sentinels,
// any discovered local models, and the known cloud-hosted variants not
// already local. Discovery failures degrade to the static part of the list.
func Catalog(ctx context.Context) []string {
	items := []string{SentinelOpenAI, SentinelAnthropic, SentinelGemini}

	local, err := ListLocalModels(ctx)
	if err != nil {
		local = nil
	}
	seen := make(map[string]bool, len(local))
	for _, name := range local {
		seen[name] = true
		items = append(items, name)
	}
	for _, name := range CloudModels {
		if !seen[name] {
			items = append(items, name)
		}
	}
	return items
}
