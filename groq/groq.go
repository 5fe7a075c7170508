// Package groq implements the completion gateway to Groq's OpenAI-compatible
// chat completions API.
//
// The same wire format is served by every OpenAI-compatible vendor, so the
// endpoint address is plain configuration and the package works unchanged
// against any of them.
package groq

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/xanalyzer/xanalyzer"
)

// DefaultAddr is Groq's chat completions endpoint.
const DefaultAddr = "https://api.groq.com/openai/v1/chat/completions"

// DefaultModel is the completion model used unless configured otherwise.
const DefaultModel = "llama-3.3-70b-versatile"

// Completion parameters, identical on every request.
const (
	temperature = 0.7
	maxTokens   = 1024
)

// Client sends conversations to a chat completions endpoint and returns the
// assistant's reply.
type Client struct {
	APIKey string // bearer credential, required
	Model  string // completion model, DefaultModel when empty
	Addr   string // endpoint URL, DefaultAddr when empty
}

// New creates a Client for the given credential, with the default model and
// endpoint.
func New(apiKey string) *Client { return &Client{APIKey: apiKey} }

// Complete sends the whole conversation, preamble included, and returns the
// assistant's reply.
//
// The request is sent exactly once. There is no retry, no streaming, and no
// caching: two identical conversations are allowed to complete differently.
func (c *Client) Complete(ctx context.Context, messages []xanalyzer.Message) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("missing Groq API key. Set -api-key or $GROQ_API_KEY first")
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	addr := c.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	type wireMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	// that's the payload
	payload := struct {
		Model       string        `json:"model"`
		Messages    []wireMessage `json:"messages"`
		Temperature float64       `json:"temperature"`
		MaxTokens   int           `json:"max_tokens"`
	}{
		Model:       model,
		Messages:    make([]wireMessage, 0, len(messages)),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, wireMessage{Role: m.Role.String(), Content: m.Content})
	}

	var jobj any
	if err := jwpost(ctx, new(http.Client), addr, c.APIKey, payload, &jobj); err != nil {
		return "", fmt.Errorf("error completing %q: %w", model, err)
	}

	path := "$.choices[0].message.content"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing completion: %q %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	content, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing completion: %q %s %v", path, "not a string", jval)
	}
	return content, nil
}
