// Package anthropic provides a narrator backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/cr7ritesh/adventure-engine/narrator"
)

// Options configure the Anthropic narrator adapter (model id, temperature,
// max tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Narrator wraps the Anthropic Messages API behind the generic
// narrator.Narrator interface.
type Narrator struct {
	client *anthropic.Client
	opts   Options
}

// New creates an Anthropic narrator using the official client.
func New(optFns ...func(o *Options)) *Narrator {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Narrator{client: &client, opts: opts}
}

// NewFromClient creates an Anthropic narrator from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Narrator {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Narrator{client: client, opts: opts}
}

// Narrate implements narrator.Narrator.
func (n *Narrator) Narrate(ctx context.Context, storyLog []string, action string) (*narrator.Turn, error) {
	prompt := narrator.BuildPrompt(storyLog, action)

	resp, err := n.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       n.opts.Model,
		MaxTokens:   n.opts.MaxTokens,
		Temperature: anthropic.Float(n.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("anthropic response has no text blocks")
	}
	return narrator.ParseTurn(b.String())
}

// Info implements narrator.Narrator.
func (n *Narrator) Info() narrator.Info {
	return narrator.Info{Name: string(n.opts.Model), Provider: "anthropic"}
}
