package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xanalyzer/xanalyzer"
)

func TestComplete(t *testing.T) {
	var gotAuth string
	var gotPayload struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Track your expenses for a month first."}}]}`)
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", Addr: srv.URL}
	conv := xanalyzer.NewConversation()
	conv.Append(xanalyzer.Message{Role: xanalyzer.User, Content: "How do I start a budget?"})

	got, err := c.Complete(context.Background(), conv.Messages())
	if err != nil {
		t.Fatalf("Complete() unexpected error = %v", err)
	}
	if want := "Track your expenses for a month first."; got != want {
		t.Errorf("Complete() = %q, want %q", got, want)
	}
	if want := "Bearer test-key"; gotAuth != want {
		t.Errorf("Complete() Authorization = %q, want %q", gotAuth, want)
	}
	if gotPayload.Model != DefaultModel {
		t.Errorf("Complete() model = %q, want %q", gotPayload.Model, DefaultModel)
	}
	if gotPayload.Temperature != 0.7 {
		t.Errorf("Complete() temperature = %v, want 0.7", gotPayload.Temperature)
	}
	if gotPayload.MaxTokens != 1024 {
		t.Errorf("Complete() max_tokens = %v, want 1024", gotPayload.MaxTokens)
	}
	if len(gotPayload.Messages) != 2 {
		t.Fatalf("Complete() sent %d messages, want 2", len(gotPayload.Messages))
	}
	if gotPayload.Messages[0].Role != "system" {
		t.Errorf("Complete() first message role = %q, want %q", gotPayload.Messages[0].Role, "system")
	}
	if gotPayload.Messages[0].Content != xanalyzer.Preamble {
		t.Errorf("Complete() first message is not the preamble: %q", gotPayload.Messages[0].Content)
	}
	if gotPayload.Messages[1].Role != "user" || gotPayload.Messages[1].Content != "How do I start a budget?" {
		t.Errorf("Complete() second message = %q %q, want the user turn", gotPayload.Messages[1].Role, gotPayload.Messages[1].Content)
	}
}

func TestComplete_modelOverride(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		gotModel = payload.Model
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", Model: "llama-3.1-8b-instant", Addr: srv.URL}
	if _, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}}); err != nil {
		t.Fatalf("Complete() unexpected error = %v", err)
	}
	if want := "llama-3.1-8b-instant"; gotModel != want {
		t.Errorf("Complete() model = %q, want %q", gotModel, want)
	}
}

func TestComplete_missingKey(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := &Client{Addr: srv.URL}
	_, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}})
	if err == nil {
		t.Fatal("Complete() expected an error with no API key")
	}
	if requests != 0 {
		t.Errorf("Complete() sent %d requests without a credential, want 0", requests)
	}
}

func TestComplete_serverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	c := &Client{APIKey: "bad-key", Addr: srv.URL}
	_, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}})
	if err == nil {
		t.Fatal("Complete() expected an error on a 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Complete() error = %q, want it to carry the status", err)
	}
	if !strings.Contains(err.Error(), "Invalid API Key") {
		t.Errorf("Complete() error = %q, want it to carry the server's message", err)
	}
}

func TestComplete_plainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", Addr: srv.URL}
	_, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}})
	if err == nil {
		t.Fatal("Complete() expected an error on a 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Complete() error = %q, want it to carry the status", err)
	}
}

func TestComplete_noChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"cmpl-1","object":"chat.completion","choices":[]}`)
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", Addr: srv.URL}
	_, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}})
	if err == nil {
		t.Fatal("Complete() expected an error when the response has no choices")
	}
}

func TestComplete_nullContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":null}}]}`)
	}))
	defer srv.Close()

	c := &Client{APIKey: "test-key", Addr: srv.URL}
	_, err := c.Complete(context.Background(), []xanalyzer.Message{{Role: xanalyzer.User, Content: "hi"}})
	if err == nil {
		t.Fatal("Complete() expected an error when the content is not a string")
	}
}
