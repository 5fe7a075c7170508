package xanalyzer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m        Money
		expected string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(0, "USD"), "$0.00"},
		{M(-20, "USD"), "-$20.00"},
		{M(decimal.RequireFromString("0.1"), "USD"), "$0.10"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	got := M(1200, "USD").Add(M(450, "USD")).Add(M(150, "USD"))
	if expected := M(1800, "USD"); !got.Equal(expected) {
		t.Errorf("Add() = %s, want %s", got, expected)
	}

	// The empty currency binds to whatever it meets.
	var total Money
	for _, v := range decimals("500", "300.25") {
		total = total.Add(M(v, "USD"))
	}
	if expected := M(800.25, "USD"); !total.Equal(expected) {
		t.Errorf("running total = %s, want %s", total, expected)
	}
	if got := total.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want %q", got, "USD")
	}
}

func TestMoney_Sub(t *testing.T) {
	got := M(1000, "USD").Sub(M(1200, "USD"))
	if !got.IsNegative() {
		t.Errorf("Sub() = %s, want a negative amount", got)
	}
	if got.IsZero() {
		t.Errorf("Sub() = %s, want a non zero amount", got)
	}
	if expected := M(-200, "USD"); !got.Equal(expected) {
		t.Errorf("Sub() = %s, want %s", got, expected)
	}
}
