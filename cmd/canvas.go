package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/xanalyzer/xanalyzer"
	"github.com/xanalyzer/xanalyzer/renderer"
)

// canvasCmd renders a chart from hand-entered data, no assistant involved.
type canvasCmd struct {
	categories string
	amounts    string
	title      string
	output     string

	w io.Writer // defaults to os.Stdout
}

func (*canvasCmd) Name() string     { return "canvas" }
func (*canvasCmd) Synopsis() string { return "render a chart from your own categories and amounts" }
func (*canvasCmd) Usage() string {
	return `xan canvas -categories <list> -amounts <list> [-title <title>] [-o <file>]

  Render a bar chart from two comma separated lists, categories and amounts,
  and print the data behind it as a table. Both lists must have the same
  number of entries, and every amount must be numeric.

Usage Examples:
# Draw a spending breakdown.
$ xan canvas -categories "Rent, Groceries, Utilities" -amounts "500, 300, 150" -o spending.png

`
}

func (p *canvasCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.categories, "categories", "", "comma separated category names")
	f.StringVar(&p.amounts, "amounts", "", "comma separated amounts, one per category")
	f.StringVar(&p.title, "title", "", "chart title, \"Custom Financial Chart\" when unset")
	f.StringVar(&p.output, "o", "chart.png", "file the chart image is written to")
}

func (p *canvasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := p.w
	if w == nil {
		w = os.Stdout
	}

	if p.categories == "" || p.amounts == "" {
		fmt.Fprintf(os.Stderr, "Error: both -categories and -amounts are required\n")
		return subcommands.ExitUsageError
	}

	theme, err := Theme()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := xanalyzer.ParseCanvasInput(p.categories, p.amounts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rendered, err := renderer.Manual(in, p.title, renderer.ChartRenderOptions{Theme: theme, Currency: *defaultCurrency})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(p.output, rendered.PNG, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving chart to %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(w, "📊 %s\n\n", rendered.Title)
	fmt.Fprint(w, rendered.Table)
	fmt.Fprintf(w, "\nChart saved to %s\n", p.output)
	return subcommands.ExitSuccess
}
