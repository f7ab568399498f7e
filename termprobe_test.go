package termprobe

import (
	"reflect"
	"testing"
)

func TestInfo_EmulatorName(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{"known family", Info{Emulator: EmulatorKitty}, "Kitty"},
		{"unknown without unit id", Info{}, "unknown"},
		{"unknown with unit id", Info{da3: "C0000001"}, "C0000001"},
		{"unknown with raw unit reply", Info{da3: "\x1bP!|X"}, "\\x1bP!|X"},
		{"unit id ignored for known family", Info{Emulator: EmulatorVTE, da3: "7E565445"}, "VTE-based"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.EmulatorName(); got != tt.expected {
				t.Errorf("EmulatorName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInfo_EmulationName(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{"plain", Info{Emulation: EmulationVT220}, "VT220"},
		{"with tail", Info{Emulation: EmulationVT525, tail: ";2"}, "VT525;2"},
		{"tail with control byte", Info{Emulation: EmulationVT100, tail: ";\x01"}, "VT100; \\x01"},
		{"unknown", Info{}, "<unknown terminal>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.EmulationName(); got != tt.expected {
				t.Errorf("EmulationName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInfo_FeatureNames(t *testing.T) {
	info := Info{Features: FeatureSet(FeatureSixel | FeatureDECSTBM)}
	expected := []string{"sixel", "decstbm"}
	if got := info.FeatureNames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("FeatureNames() = %v, want %v", got, expected)
	}
}
