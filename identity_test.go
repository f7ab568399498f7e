package termprobe

import "testing"

func TestEmulator_String(t *testing.T) {
	tests := []struct {
		input    Emulator
		expected string
	}{
		{EmulatorUnknown, "unknown"},
		{EmulatorXTerm, "XTerm"},
		{EmulatorVTE, "VTE-based"},
		{EmulatorFoot, "Foot"},
		{EmulatorTerminology, "Terminology"},
		{EmulatorContour, "Contour"},
		{EmulatorRxvt, "rxvt"},
		{EmulatorMrxvt, "mrxvt"},
		{EmulatorKitty, "Kitty"},
		{EmulatorAlacritty, "Alacritty"},
		{EmulatorST, "st"},
		{EmulatorKonsole, "Konsole"},
		{EmulatorETerm, "ETerm"},
		{EmulatorEmacsTerm, "Emacs Term"},
		{EmulatorQt5, "Qt5"},
		{EmulatorGhostty, "ghostty"},
		{Emulator(200), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Emulator.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEscapeBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"printable", "C0000001", "C0000001"},
		{"control bytes", "\x1bP!|X\x07", "\\x1bP!|X\\x07"},
		{"high byte", "a\xffb", "a\\xffb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeBytes(tt.input); got != tt.expected {
				t.Errorf("escapeBytes(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
