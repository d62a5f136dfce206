package models

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// ---------------------------- OpenAI (hosted) --------------------------------

type OpenAIGenerator struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIGenerator constructs the hosted-API strategy. It reads
// OPENAI_API_KEY from the env (OPENAI_KEY as a fallback).
func NewOpenAIGenerator(model string) *OpenAIGenerator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_KEY")
	}
	return &OpenAIGenerator{Client: openai.NewClient(apiKey), Model: model}
}

func (o *OpenAIGenerator) Generate(ctx context.Context, mode Mode, systemPrompt, userPrompt string) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: float32(temperatureFor(mode)),
		MaxTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Generator = (*OpenAIGenerator)(nil)
