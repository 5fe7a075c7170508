package xanalyzer

import "testing"

func TestTheme(t *testing.T) {
	if Theme(0) != Day {
		t.Error("the zero theme is not day")
	}

	for _, theme := range []Theme{Day, Night} {
		got, err := ParseTheme(theme.String())
		if err != nil {
			t.Errorf("ParseTheme(%q) error = %v", theme.String(), err)
		}
		if got != theme {
			t.Errorf("ParseTheme(%q) = %v, want %v", theme.String(), got, theme)
		}
	}

	if _, err := ParseTheme("dusk"); err == nil {
		t.Error("ParseTheme(\"dusk\") = nil error, want one")
	}
}
