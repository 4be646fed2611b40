package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFit(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Sort", 6, "Sort  "},
		{"Launch social media campaign", 10, "Launch so…"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
		{"", 2, "  "},
	}
	for _, tc := range cases {
		if got := fit(tc.in, tc.width); got != tc.want {
			t.Fatalf("fit(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestFitMeasuresWideRunes(t *testing.T) {
	got := fit("📋 Job Request", 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Fatalf("fit width = %d, want 8 (%q)", w, got)
	}
}

func TestClipKeepsStyledPrefix(t *testing.T) {
	styled := "\x1b[1mbold text\x1b[0m"
	if w := ansi.StringWidth(clip(styled, 4)); w != 4 {
		t.Fatalf("clip width = %d, want 4", w)
	}
}
