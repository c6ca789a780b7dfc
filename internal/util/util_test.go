package util

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{6.75, "6h 45m"},
		{4.5, "4h 30m"},
		{2.25, "2h 15m"},
		{-1.5, "1h 30m"},
		{0.0166, "0h 1m"},
		{1.999, "1h 60m"},
		{2.9999, "2h 60m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.hours); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Research Analysis", 8); got != "Researc…" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("Lab", 8); got != "Lab" {
		t.Errorf("got %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("proj_001"); got != "001" {
		t.Errorf("got %q", got)
	}
	if got := ShortID("entry_0f8fad5b-d9cb-469f-a165-70867728950e"); got != "0f8fad5b" {
		t.Errorf("got %q", got)
	}
	if got := ShortID("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}
