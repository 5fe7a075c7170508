package xanalyzer

import "fmt"

// Theme selects the visual mode of the terminal and of rendered charts.
type Theme int

const (
	// Day renders dark ink on a light background.
	Day Theme = iota
	// Night renders light ink on a dark background.
	Night
)

func (t Theme) String() string {
	switch t {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "day":
		return Day, nil
	case "night":
		return Night, nil
	default:
		return 0, fmt.Errorf("unknown theme: %q", s)
	}
}
