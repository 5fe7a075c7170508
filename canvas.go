package xanalyzer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CanvasInput is a manual chart request: two comma-separated lists typed by
// the user, one of category names and one of amounts.
type CanvasInput struct {
	Categories []string
	Amounts    []decimal.Decimal
}

// ParseCanvasInput parses the raw category and amount lists of canvas mode.
// Both lists are comma-split and trimmed. It returns an error on the first
// non-numeric amount, or when the two lists differ in length.
func ParseCanvasInput(categories, amounts string) (*CanvasInput, error) {
	in := new(CanvasInput)
	for _, c := range strings.Split(categories, ",") {
		in.Categories = append(in.Categories, strings.TrimSpace(c))
	}
	for _, a := range strings.Split(amounts, ",") {
		s := strings.TrimSpace(a)
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("amount %q is not a numeric value: %w", s, err)
		}
		in.Amounts = append(in.Amounts, v)
	}
	if len(in.Categories) != len(in.Amounts) {
		return nil, fmt.Errorf("the number of categories (%d) and amounts (%d) must be the same", len(in.Categories), len(in.Amounts))
	}
	return in, nil
}
