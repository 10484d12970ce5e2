package formatting_test

import (
	"testing"

	"github.com/JaimeStill/litterlens/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 2, "0 B"},
		{-5, 2, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KB"},
		{1536, 1, "1.5 KB"},
		{10 * 1024 * 1024, 0, "10 MB"},
		{3 * 1024 * 1024 * 1024, 2, "3.00 GB"},
		{1024, -1, "1 KB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2048", 2048},
		{"10MB", 10 * 1024 * 1024},
		{"512 kb", 512 * 1024},
		{" 1.5KB ", 1536},
		{"1GB", 1024 * 1024 * 1024},
		{"7B", 7},
	}

	for _, tt := range tests {
		got, err := formatting.ParseBytes(tt.input)
		if err != nil {
			t.Errorf("ParseBytes(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseBytesErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "MB", "10XB", "1.2.3KB"} {
		if _, err := formatting.ParseBytes(input); err == nil {
			t.Errorf("ParseBytes(%q): expected error", input)
		}
	}
}
