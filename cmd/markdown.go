package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/xanalyzer/xanalyzer"
)

// renderMarkdown renders a markdown string for the terminal, styled after
// the chart theme. On any rendering trouble the raw markdown stands in.
func renderMarkdown(md string, theme xanalyzer.Theme) string {
	style := "light"
	if theme == xanalyzer.Night {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to stdout.
func printMarkdown(md string) {
	theme, err := Theme()
	if err != nil {
		theme = xanalyzer.Day
	}
	fmt.Print(renderMarkdown(md, theme))
}
