package staffing

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxTokens = 2048

// Completer turns a prompt into model text.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// AnthropicCompleter calls the Claude Messages API.
type AnthropicCompleter struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicCompleter builds a Completer for the given key and model.
func NewAnthropicCompleter(apiKey, model string, opts ...option.RequestOption) *AnthropicCompleter {
	c := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicCompleter{client: &c, model: model}
}

// Complete implements Completer. API rejections come back as *StatusError.
func (a *AnthropicCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", fmt.Errorf("calling Claude API: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", ErrNoResponse
}
