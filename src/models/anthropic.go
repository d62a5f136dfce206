package models

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// ---------------------------- Anthropic (hosted) -----------------------------

type AnthropicGenerator struct {
	Client *anthropic.Client
	Model  string
}

// NewAnthropicGenerator constructs a hosted strategy over Anthropic's
// Messages API. It reads ANTHROPIC_API_KEY from the env.
func NewAnthropicGenerator(model string) *AnthropicGenerator {
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &AnthropicGenerator{Client: &cl, Model: model}
}

func (a *AnthropicGenerator) Generate(ctx context.Context, mode Mode, systemPrompt, userPrompt string) (string, error) {
	msg, err := a.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.Model),
		MaxTokens:   maxOutputTokens,
		Temperature: anthropic.Float(temperatureFor(mode)),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no text content", ErrResponse)
	}
	return b.String(), nil
}

var _ Generator = (*AnthropicGenerator)(nil)
