// Package gemini provides a narrator backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cr7ritesh/adventure-engine/narrator"
)

// Options configure the Gemini narrator (model id, temperature). Extend via
// functional options to preserve stability.
type Options struct {
	Model       string
	Temperature float32
}

// Narrator wraps the Gemini generative model behind the generic
// narrator.Narrator interface.
type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	opts   Options
}

// New creates a Gemini narrator using the official client.
func New(ctx context.Context, apiKey string, optFns ...func(o *Options)) (*Narrator, error) {
	opts := Options{
		Model:       "gemini-1.5-flash",
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(opts.Temperature)

	return &Narrator{client: client, model: model, opts: opts}, nil
}

// Narrate implements narrator.Narrator.
func (n *Narrator) Narrate(ctx context.Context, storyLog []string, action string) (*narrator.Turn, error) {
	prompt := narrator.BuildPrompt(storyLog, action)

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	raw, err := textFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return narrator.ParseTurn(raw)
}

// Info implements narrator.Narrator.
func (n *Narrator) Info() narrator.Info {
	return narrator.Info{Name: n.opts.Model, Provider: "gemini"}
}

// Close releases the underlying client connection.
func (n *Narrator) Close() error { return n.client.Close() }

// textFromResponse concatenates the text parts of the first candidate.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini response has no text parts")
	}
	return b.String(), nil
}
