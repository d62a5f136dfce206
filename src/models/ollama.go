package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// ---------------------------- Local endpoint ---------------------------------

// LocalGenerator talks to a locally reachable model-serving endpoint.
type LocalGenerator struct {
	Client  *ollama.Client
	Model   string
	Variant Variant
}

func localClient() (*ollama.Client, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}
	return ollama.NewClient(u, &http.Client{Timeout: 120 * time.Second}), nil
}

// NewLocalGenerator constructs the local strategy for one model identifier.
func NewLocalGenerator(model string, variant Variant) (*LocalGenerator, error) {
	c, err := localClient()
	if err != nil {
		return nil, err
	}
	return &LocalGenerator{Client: c, Model: model, Variant: variant}, nil
}

func (l *LocalGenerator) Generate(ctx context.Context, mode Mode, systemPrompt, userPrompt string) (string, error) {
	var messages []ollama.Message
	if systemPrompt != "" {
		messages = append(messages, ollama.Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, ollama.Message{Role: "user", Content: userPrompt})

	stream := false
	req := &ollama.ChatRequest{
		Model:    l.Model,
		Messages: messages,
		Stream:   &stream,
	}

	// Cloud-hosted variants do not apply sensible sampling defaults on
	// their own, so those get explicit options; plain local models keep
	// whatever their Modelfile configures.
	if l.Variant == VariantCloudHosted {
		req.Options = map[string]any{
			"temperature": codeTemperature,
			"num_predict": maxOutputTokens,
		}
	}

	var (
		text strings.Builder
		got  bool
	)
	err := l.Client.Chat(ctx, req, func(cr ollama.ChatResponse) error {
		got = true
		text.WriteString(cr.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if !got || text.Len() == 0 {
		// Reached the endpoint but the reply is unusable; report this
		// apart from transport failures.
		return "", fmt.Errorf("%w: failed to get valid response", ErrResponse)
	}
	return text.String(), nil
}

// ListLocalModels returns the identifiers of the models the local endpoint
// has available.
func ListLocalModels(ctx context.Context) ([]string, error) {
	c, err := localClient()
	if err != nil {
		return nil, err
	}
	resp, err := c.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

var _ Generator = (*LocalGenerator)(nil)
