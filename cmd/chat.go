package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/xanalyzer/xanalyzer/agent"
)

// chatCmd is the subcommand for the interactive assistant.
type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive session with the financial assistant" }
func (*chatCmd) Usage() string {
	return `xan chat [<first question> ...]

  Start an interactive session with the financial assistant. Questions given
  on the command line run first, as if typed at the prompt.

  Replies that embed a chart payload are rendered to numbered PNG files
  under -chart-dir, with the data behind them echoed as a table.

Usage Examples:
# Open a session and ask as you go.
$ xan chat

# Lead with a question.
$ xan chat "I spend $500 on rent, $300 on groceries, $150 on utilities"

`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	session, err := NewSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, session)
	a.ChartDir = *chartDir
	a.Markdown = func(md string) string { return renderMarkdown(md, session.Theme) }

	if err := a.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
