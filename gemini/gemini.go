// Package gemini implements the completion gateway to Google's Gemini
// models, for users who carry a Google credential instead of a Groq one.
// The genai SDK reads $GEMINI_API_KEY on its own.
package gemini

import (
	"context"
	"fmt"

	"github.com/xanalyzer/xanalyzer"
	"google.golang.org/genai"
)

// DefaultModel is the completion model used unless configured otherwise.
const DefaultModel = "gemini-2.5-flash"

// Completion parameters, identical on every request.
const (
	temperature = 0.7
	maxTokens   = 1024
)

// Client sends conversations to Gemini and returns the model's reply.
type Client struct {
	Model  string
	client *genai.Client
}

// New creates a Client. It fails when the environment carries no usable
// Google credential.
func New(ctx context.Context, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{Model: model, client: client}, nil
}

// Complete sends the whole conversation and returns the model's reply.
//
// The preamble travels as the system instruction, user turns as "user"
// content and assistant turns as "model" content. Like the groq gateway it
// sends exactly once, with the same temperature and token cap.
func (c *Client) Complete(ctx context.Context, messages []xanalyzer.Message) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: maxTokens,
	}
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case xanalyzer.System:
			config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.Content}}}
		case xanalyzer.Assistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.Model, contents, config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", c.Model)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
