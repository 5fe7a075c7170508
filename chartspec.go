package xanalyzer

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ChartKind selects the shape of a rendered chart.
type ChartKind int

const (
	// Bar draws one vertical bar per category. It is the default kind.
	Bar ChartKind = iota
	// Pie draws one slice per category, proportional to its amount.
	Pie
	// Line connects the amounts in category order, with a dot per point.
	Line
)

func (k ChartKind) String() string {
	switch k {
	case Pie:
		return "pie"
	case Line:
		return "line"
	default:
		return "bar"
	}
}

// ParseChartKind parses a string into a ChartKind.
// Unrecognized kinds fall back to Bar.
func ParseChartKind(s string) ChartKind {
	switch s {
	case "pie":
		return Pie
	case "line":
		return Line
	default:
		return Bar
	}
}

// DefaultTitle is used for chart payloads that carry no title of their own.
const DefaultTitle = "Financial Analysis"

// ChartSpec is the visualization request extracted from an assistant reply.
type ChartSpec struct {
	Kind   ChartKind
	Title  string
	Labels []string
	Values []decimal.Decimal
}

// ParseChartSpec extracts the chart payload embedded in an assistant reply.
//
// The payload is the outermost brace-delimited span of the text, decoded as
// {"chart_type": ..., "title": ..., "data": {"labels": [], "values": []}}.
// A missing chart_type defaults to bar, a missing title to DefaultTitle.
// It reports false when the text carries no decodable payload: no braces,
// malformed JSON, a non-numeric value entry, or a data object lacking the
// labels or the values key. Labels and values of different lengths are
// still a valid spec; rendering is where that fails.
func ParseChartSpec(text string) (*ChartSpec, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return nil, false
	}

	// that's the payload
	var payload struct {
		ChartType string `json:"chart_type"`
		Title     string `json:"title"`
		Data      *struct {
			Labels []string          `json:"labels"`
			Values []decimal.Decimal `json:"values"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, false
	}
	if payload.Data == nil || payload.Data.Labels == nil || payload.Data.Values == nil {
		return nil, false
	}

	title := payload.Title
	if title == "" {
		title = DefaultTitle
	}
	return &ChartSpec{
		Kind:   ParseChartKind(payload.ChartType),
		Title:  title,
		Labels: payload.Data.Labels,
		Values: payload.Data.Values,
	}, true
}
