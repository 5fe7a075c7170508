package xanalyzer

import "testing"

func TestRole_String(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{System, "system"},
		{User, "user"},
		{Assistant, "assistant"},
		{Role(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.expected {
			t.Errorf("Role(%d).String() = %q, want %q", int(tt.role), got, tt.expected)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range []Role{System, User, Assistant} {
		got, err := ParseRole(role.String())
		if err != nil {
			t.Errorf("ParseRole(%q) error = %v", role.String(), err)
		}
		if got != role {
			t.Errorf("ParseRole(%q) = %v, want %v", role.String(), got, role)
		}
	}

	if _, err := ParseRole("moderator"); err == nil {
		t.Error("ParseRole(\"moderator\") = nil error, want one")
	}
}
