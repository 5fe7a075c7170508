// Package cmd implements the CLI application to chat with the financial
// assistant and render charts from its replies.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/xanalyzer/xanalyzer"
	"github.com/xanalyzer/xanalyzer/agent"
	"github.com/xanalyzer/xanalyzer/docs"
	"github.com/xanalyzer/xanalyzer/gemini"
	"github.com/xanalyzer/xanalyzer/groq"
)

// Commands lists the subcommands for a main package to register.
var Commands = []subcommands.Command{
	&chatCmd{},
	&canvasCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiKey = flag.String("api-key", "", "Groq API key, $GROQ_API_KEY when unset")
var model = flag.String("model", "", "model serving the completions, the provider's default when unset")
var baseURL = flag.String("base-url", "", "OpenAI-compatible completion endpoint, Groq's when unset")
var provider = flag.String("provider", "groq", "completion provider, groq or gemini")
var themeName = flag.String("theme", "day", "chart palette, day or night")
var defaultCurrency = flag.String("currency", "USD", "currency chart amounts are formatted in")
var chartDir = flag.String("chart-dir", ".", "directory chart images are written to")
var Verbose = flag.Bool("v", false, "log the requests behind each turn")

// Theme resolves the global theme flag.
func Theme() (xanalyzer.Theme, error) {
	return xanalyzer.ParseTheme(*themeName)
}

// NewCompleter builds the completion client the global flags select.
func NewCompleter(ctx context.Context) (agent.Completer, error) {
	switch *provider {
	case "groq":
		key := *apiKey
		if key == "" {
			key = os.Getenv("GROQ_API_KEY")
		}
		c := groq.New(key)
		c.Model = *model
		c.Addr = *baseURL
		return c, nil
	case "gemini":
		return gemini.New(ctx, *model)
	default:
		return nil, fmt.Errorf("unknown provider %q, want groq or gemini", *provider)
	}
}

// NewSession builds a chat session over the flagged provider, theme and
// currency.
func NewSession(ctx context.Context) (*agent.Session, error) {
	theme, err := Theme()
	if err != nil {
		return nil, err
	}
	completer, err := NewCompleter(ctx)
	if err != nil {
		return nil, err
	}
	s := agent.NewSession(completer)
	s.Theme = theme
	s.Currency = *defaultCurrency
	return s, nil
}

// Completion describes the command line for bash completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"chat": {},
			"canvas": {Flags: map[string]complete.Predictor{
				"categories": predict.Nothing,
				"amounts":    predict.Nothing,
				"title":      predict.Nothing,
				"o":          predict.Files("*.png"),
			}},
			"topic": {Args: predict.Set(append(topics, "*"))},
			"help":  {},
		},
		Flags: map[string]complete.Predictor{
			"api-key":   predict.Nothing,
			"model":     predict.Set{groq.DefaultModel, "llama-3.1-8b-instant", gemini.DefaultModel},
			"base-url":  predict.Nothing,
			"provider":  predict.Set{"groq", "gemini"},
			"theme":     predict.Set{"day", "night"},
			"currency":  predict.Set{"USD", "EUR", "GBP", "JPY"},
			"chart-dir": predict.Dirs("*"),
			"v":         predict.Nothing,
		},
	}
}
