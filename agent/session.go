package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/xanalyzer/xanalyzer"
	"github.com/xanalyzer/xanalyzer/renderer"
)

// Completer produces the assistant's reply to a conversation. The groq and
// gemini clients both implement it.
type Completer interface {
	Complete(ctx context.Context, messages []xanalyzer.Message) (string, error)
}

// State identifies where a session stands in its turn cycle.
type State int

const (
	// Idle means the session waits for user input.
	Idle State = iota
	// AwaitingCompletion means a completion request is in flight.
	AwaitingCompletion
	// Rendering means a reply is being scanned for a chart payload.
	Rendering
)

func (s State) String() string {
	switch s {
	case AwaitingCompletion:
		return "awaiting-completion"
	case Rendering:
		return "rendering"
	default:
		return "idle"
	}
}

// Turn is the outcome of one exchange: the assistant's reply, and the chart
// rendered from it when the reply embedded a payload.
type Turn struct {
	Reply string
	// Chart is nil when the reply carried no decodable payload.
	Chart *renderer.RenderedChart
	// ChartErr reports a payload that decoded but could not be rendered.
	// The reply stands regardless.
	ChartErr error
}

// Session is a single-user chat session. It owns the conversation, consults
// the completer one turn at a time, and renders any chart payload the
// assistant embeds in a reply.
//
// A Session is not safe for concurrent use: turns run one at a time, and a
// request in flight is never cancelled by a later one.
type Session struct {
	conversation *xanalyzer.Conversation
	completer    Completer
	state        State

	// Theme and Currency style the rendered charts and their data tables.
	// Both may change between turns.
	Theme    xanalyzer.Theme
	Currency string
}

// NewSession creates an idle session over the given completer, with the
// default day theme and USD amounts.
func NewSession(completer Completer) *Session {
	return &Session{
		conversation: xanalyzer.NewConversation(),
		completer:    completer,
		Currency:     "USD",
	}
}

// State returns where the session stands in its turn cycle.
func (s *Session) State() State { return s.state }

// History returns a copy of the visible exchange so far.
func (s *Session) History() []xanalyzer.Message { return s.conversation.History() }

// Ask runs one full turn: append the user input, obtain the assistant's
// reply, and render the chart payload if the reply embeds one.
//
// Blank input is rejected before anything is recorded or sent. When the
// completer fails, its error is returned, no assistant message is appended,
// and the user message stays so the next attempt carries it. A reply whose
// payload fails to render comes back as a Turn with ChartErr set; a reply
// with no payload at all is simply a Turn without a chart.
func (s *Session) Ask(ctx context.Context, input string) (*Turn, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("empty input: type a question first")
	}

	s.state = AwaitingCompletion
	defer func() { s.state = Idle }()

	s.conversation.Append(xanalyzer.Message{Role: xanalyzer.User, Content: input})
	reply, err := s.completer.Complete(ctx, s.conversation.Messages())
	if err != nil {
		return nil, err
	}
	s.conversation.Append(xanalyzer.Message{Role: xanalyzer.Assistant, Content: reply})

	s.state = Rendering
	turn := &Turn{Reply: reply}
	if spec, ok := xanalyzer.ParseChartSpec(reply); ok {
		chart, err := renderer.Chart(spec, renderer.ChartRenderOptions{Theme: s.Theme, Currency: s.Currency})
		if err != nil {
			turn.ChartErr = err
		} else {
			turn.Chart = chart
		}
	}
	return turn, nil
}

// Clear drops the exchange so far and returns the session to idle. The
// preamble stays, so the assistant keeps its persona and payload contract.
func (s *Session) Clear() {
	s.conversation.Reset()
	s.state = Idle
}
