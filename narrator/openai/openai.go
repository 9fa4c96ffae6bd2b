// Package openai provides a narrator backed by the OpenAI Chat Completions
// API. It adapts the engine's prompt/turn structures into the SDK's message
// format and back.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/cr7ritesh/adventure-engine/narrator"
)

// Options configure the OpenAI narrator adapter. Fields mirror a subset of
// Chat Completion parameters intentionally kept minimal; extend via
// functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Narrator wraps the OpenAI Chat Completions API behind the generic
// narrator.Narrator interface.
type Narrator struct {
	client *openai.Client
	opts   Options
}

// New creates an OpenAI narrator using the official client. The API key is
// read from the environment by the SDK.
func New(optFns ...func(o *Options)) *Narrator {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates an OpenAI narrator from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Narrator {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Narrator{client: client, opts: opts}
}

// Narrate implements narrator.Narrator.
func (n *Narrator) Narrate(ctx context.Context, storyLog []string, action string) (*narrator.Turn, error) {
	prompt := narrator.BuildPrompt(storyLog, action)

	resp, err := n.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: n.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(n.opts.Temperature),
		MaxCompletionTokens: openai.Int(n.opts.MaxCompletionTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai response has no choices")
	}
	return narrator.ParseTurn(resp.Choices[0].Message.Content)
}

// Info implements narrator.Narrator.
func (n *Narrator) Info() narrator.Info {
	return narrator.Info{Name: n.opts.Model, Provider: "openai"}
}
