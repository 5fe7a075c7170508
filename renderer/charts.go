package renderer

import (
	"bytes"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xanalyzer/xanalyzer"
)

// palette holds the colors of one theme.
type palette struct {
	bg     drawing.Color // page and canvas background
	ink    drawing.Color // text, axis lines
	accent drawing.Color // bars, line strokes and dots
}

func themePalette(t xanalyzer.Theme) palette {
	if t == xanalyzer.Night {
		return palette{
			bg:     drawing.ColorFromHex("2c2c2c"),
			ink:    drawing.ColorWhite,
			accent: drawing.ColorFromHex("ff9800"),
		}
	}
	return palette{
		bg:     drawing.ColorFromHex("f4f4f9"),
		ink:    drawing.ColorFromHex("333333"),
		accent: drawing.ColorFromHex("4caf50"),
	}
}

// rasterize draws the chart as a PNG.
func rasterize(spec *xanalyzer.ChartSpec, opts ChartRenderOptions) ([]byte, error) {
	switch spec.Kind {
	case xanalyzer.Pie:
		return renderPie(spec, opts)
	case xanalyzer.Line:
		return renderLine(spec, opts)
	default:
		return renderBar(spec, opts)
	}
}

func renderPie(spec *xanalyzer.ChartSpec, opts ChartRenderOptions) ([]byte, error) {
	pal := themePalette(opts.Theme)
	values := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		values = append(values, chart.Value{
			Label: spec.Labels[i],
			Value: v.InexactFloat64(),
			Style: chart.Style{FontColor: pal.ink},
		})
	}

	pie := chart.PieChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: pal.ink},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: pal.bg, Padding: chart.Box{Top: 30, Left: 25, Right: 25, Bottom: 25}},
		Canvas:     chart.Style{FillColor: pal.bg},
		Values:     values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderBar(spec *xanalyzer.ChartSpec, opts ChartRenderOptions) ([]byte, error) {
	pal := themePalette(opts.Theme)
	bars := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		bars = append(bars, chart.Value{
			Label: spec.Labels[i],
			Value: v.InexactFloat64(),
			Style: chart.Style{FillColor: pal.accent, StrokeColor: pal.accent},
		})
	}

	// go-chart's bar chart has no slot for an X axis name; the category
	// names label the bars themselves.
	bar := chart.BarChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: pal.ink},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: pal.bg, Padding: chart.Box{Top: 40, Left: 25, Right: 25, Bottom: 25}},
		Canvas:     chart.Style{FillColor: pal.bg},
		XAxis:      chart.Style{FontColor: pal.ink, StrokeColor: pal.ink},
		YAxis: chart.YAxis{
			Name:      "Amount",
			NameStyle: chart.Style{FontColor: pal.ink},
			Style:     chart.Style{FontColor: pal.ink, StrokeColor: pal.ink},
			Range:     valueRange(spec.Values),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderLine(spec *xanalyzer.ChartSpec, opts ChartRenderOptions) ([]byte, error) {
	pal := themePalette(opts.Theme)

	xs := make([]float64, 0, len(spec.Values))
	ys := make([]float64, 0, len(spec.Values))
	ticks := make([]chart.Tick, 0, len(spec.Values))
	for i, v := range spec.Values {
		xs = append(xs, float64(i))
		ys = append(ys, v.InexactFloat64())
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: spec.Labels[i]})
	}
	// A single point has no x-range to draw; duplicate it on a phantom tick.
	if len(xs) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
	}

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: pal.ink},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{FillColor: pal.bg, Padding: chart.Box{Top: 40, Left: 25, Right: 25, Bottom: 25}},
		Canvas:     chart.Style{FillColor: pal.bg},
		XAxis: chart.XAxis{
			Name:      "Category",
			NameStyle: chart.Style{FontColor: pal.ink},
			Style:     chart.Style{FontColor: pal.ink, StrokeColor: pal.ink},
			Ticks:     ticks,
		},
		YAxis: chart.YAxis{
			Name:      "Amount",
			NameStyle: chart.Style{FontColor: pal.ink},
			Style:     chart.Style{FontColor: pal.ink, StrokeColor: pal.ink},
			Range:     valueRange(spec.Values),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: pal.accent,
					StrokeWidth: 2,
					DotColor:    pal.accent,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// valueRange returns an explicit y range covering the values and the zero
// line. go-chart refuses a computed range of zero span, which flat or
// single-value data would otherwise produce.
func valueRange(values []decimal.Decimal) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		f := v.InexactFloat64()
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
