package renderer

import (
	"fmt"
	"strings"

	"github.com/xanalyzer/xanalyzer"
)

// dataRenderer formats the data behind a chart into a markdown string.
type dataRenderer struct {
	*strings.Builder
	currency string
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *dataRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// dataMarkdown renders the category/amount pairs of a chart as a markdown
// table, amounts formatted as money in the given currency, with a total row.
// The spec is assumed valid: as many labels as values.
func dataMarkdown(spec *xanalyzer.ChartSpec, currency string) string {
	r := &dataRenderer{Builder: &strings.Builder{}, currency: currency}

	r.Printf("| Category | Amount |\n")
	r.Printf("|:---|---:|\n")
	total := xanalyzer.M(0, currency)
	for i, label := range spec.Labels {
		m := xanalyzer.M(spec.Values[i], currency)
		total = total.Add(m)
		r.Printf("| %s | %s |\n", label, m)
	}
	r.Printf("| **Total** | **%s** |\n", total)
	return r.String()
}
