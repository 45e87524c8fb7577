package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short passes through", "brief", 40, "brief"},
		{"exact length passes through", "exactly ten", 11, "exactly ten"},
		{
			"long ascii gets ellipsis",
			"a wetland ecosystem dominated by grasses and sedges",
			20,
			"a wetland ecosyst...",
		},
		{
			"multi-byte runes stay whole",
			"schadenfreude — Freude über das Missgeschick anderer Ménschen",
			20,
			"schadenfreude — F...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}
