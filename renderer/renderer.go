// Package renderer materializes charts for the terminal.
//
// A chart comes out in two forms at once: a PNG raster drawn with go-chart,
// and a markdown table of the category/amount pairs behind it, with amounts
// formatted as money. The table is printed in the transcript next to the
// image file's path, so the numbers stay readable where the terminal cannot
// show pixels.
package renderer

import (
	"fmt"

	"github.com/xanalyzer/xanalyzer"
)

// Default raster dimensions, in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// ManualTitle is the title of canvas mode charts that carry none of their own.
const ManualTitle = "Custom Financial Chart"

// ChartRenderOptions holds configuration for rendering a chart.
type ChartRenderOptions struct {
	Theme    xanalyzer.Theme // visual template of the raster
	Currency string          // ISO code formatting the amounts of the data table
	Width    int             // raster width, DefaultWidth when 0
	Height   int             // raster height, DefaultHeight when 0
}

// RenderedChart is a chart materialized for the terminal.
type RenderedChart struct {
	Kind  xanalyzer.ChartKind
	Title string
	PNG   []byte // the raster image
	Table string // markdown table of the category/amount pairs
}

// Chart renders a chart into a raster and its data table.
//
// Pairs keep the order they carry in the payload. It fails when the labels
// and values differ in count, or when there is nothing to draw.
func Chart(spec *xanalyzer.ChartSpec, opts ChartRenderOptions) (*RenderedChart, error) {
	if len(spec.Labels) != len(spec.Values) {
		return nil, fmt.Errorf("chart %q has %d labels for %d values; the number of categories and amounts must be the same", spec.Title, len(spec.Labels), len(spec.Values))
	}
	if len(spec.Labels) == 0 {
		return nil, fmt.Errorf("chart %q has no data points", spec.Title)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	png, err := rasterize(spec, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot render %s chart %q: %w", spec.Kind, spec.Title, err)
	}
	return &RenderedChart{
		Kind:  spec.Kind,
		Title: spec.Title,
		PNG:   png,
		Table: dataMarkdown(spec, opts.Currency),
	}, nil
}

// Manual renders a canvas mode input: always a bar chart, like the chat
// payload's default kind.
func Manual(in *xanalyzer.CanvasInput, title string, opts ChartRenderOptions) (*RenderedChart, error) {
	if title == "" {
		title = ManualTitle
	}
	return Chart(&xanalyzer.ChartSpec{
		Kind:   xanalyzer.Bar,
		Title:  title,
		Labels: in.Categories,
		Values: in.Amounts,
	}, opts)
}
