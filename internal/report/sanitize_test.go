package report

import "testing"

func TestSanitizeTerminal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "XTerm(395)", "XTerm(395)"},
		{"escape sequence", "a\x1b[31mred", "a\\x1b[31mred"},
		{"keeps newline and tab", "a\tb\nc", "a\tb\nc"},
		{"high byte", "x\xffy", "x\\xffy"},
		{"delete", "x\x7f", "x\\x7f"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminal(tt.input); got != tt.expected {
				t.Errorf("SanitizeTerminal(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
