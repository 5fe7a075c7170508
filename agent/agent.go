package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xanalyzer/xanalyzer"
)

// Agent is the interactive front of a chat session. It reads questions,
// prints replies, and saves rendered charts next to the transcript.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Session *Session

	// Markdown renders a markdown string for the terminal. When nil the
	// markdown is printed verbatim.
	Markdown func(md string) string
	// ChartDir is the directory chart images are written to. Defaults to
	// the working directory.
	ChartDir string

	charts int
}

// New creates a new Agent over the given session.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, session *Session) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Session: session,
	}
}

const prompt = "xan> "

// Run starts the interactive REPL session for the agent.
//
// Besides questions for the assistant, the loop understands a few session
// keywords: 'bye' exits, 'clear' drops the exchange so far, 'history'
// prints it, and 'theme day|night' restyles subsequent charts.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to X Analyzer, your financial assistant. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		switch {
		case input == "":
			continue
		case input == "bye":
			return nil
		case input == "clear":
			a.Session.Clear()
			fmt.Fprintln(a.w, "Chat history cleared.")
		case input == "history":
			a.printHistory()
		case input == "theme":
			fmt.Fprintf(a.w, "Theme is %s.\n", a.Session.Theme)
		case strings.HasPrefix(input, "theme "):
			a.setTheme(strings.TrimSpace(strings.TrimPrefix(input, "theme ")))
		default:
			if err := a.turn(ctx, input); err != nil {
				return err
			}
		}
	}
}

// turn runs one exchange and prints its outcome. Completion errors are
// printed rather than returned: the session survives them, so the user can
// retry. Only a failure to save a chart image ends the loop.
func (a *Agent) turn(ctx context.Context, input string) error {
	turn, err := a.Session.Ask(ctx, input)
	if err != nil {
		fmt.Fprintln(a.w, "Error:", err)
		return nil
	}
	fmt.Fprintln(a.w, a.markdown(turn.Reply))
	if turn.ChartErr != nil {
		fmt.Fprintln(a.w, "Error creating visualization:", turn.ChartErr)
		return nil
	}
	if turn.Chart == nil {
		return nil
	}

	path, err := a.saveChart(turn.Chart.PNG)
	if err != nil {
		return fmt.Errorf("cannot save chart: %w", err)
	}
	fmt.Fprintln(a.w, a.markdown(fmt.Sprintf("## 📊 %s\n\n%s", turn.Chart.Title, turn.Chart.Table)))
	fmt.Fprintf(a.w, "Chart saved to %s\n", path)
	return nil
}

func (a *Agent) printHistory() {
	history := a.Session.History()
	if len(history) == 0 {
		fmt.Fprintln(a.w, "No messages yet.")
		return
	}
	for _, m := range history {
		fmt.Fprintf(a.w, "%s: %s\n", m.Role, m.Content)
	}
}

func (a *Agent) setTheme(name string) {
	theme, err := xanalyzer.ParseTheme(name)
	if err != nil {
		fmt.Fprintln(a.w, "Error:", err)
		return
	}
	a.Session.Theme = theme
	fmt.Fprintf(a.w, "Theme set to %s.\n", theme)
}

// saveChart writes a chart image under ChartDir, numbering files in the
// order the session produced them.
func (a *Agent) saveChart(png []byte) (string, error) {
	dir := a.ChartDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	a.charts++
	path := filepath.Join(dir, fmt.Sprintf("chart-%04d.png", a.charts))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (a *Agent) markdown(md string) string {
	if a.Markdown == nil {
		return md
	}
	return a.Markdown(md)
}
