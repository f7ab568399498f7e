package termprobe

import (
	"reflect"
	"testing"
)

func TestFeature_String(t *testing.T) {
	tests := []struct {
		input    Feature
		expected string
	}{
		{Feature132Cols, "132cols"},
		{FeaturePrinter, "printer"},
		{FeatureSixel, "sixel"},
		{FeatureNRCS, "nrcs"},
		{FeatureHorScroll, "horscroll"},
		{FeatureAnsiColors, "ansicolors"},
		{FeatureCaptureContour, "capturecontour"},
		{FeatureRectEditContour, "recteditcontour"},
		{FeatureDesktopNotification, "desktopnotification"},
		{FeatureDECSTBM, "decstbm"},
		{FeatureVertLineMarkers, "vertlinemarkers"},
		{Feature(0), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Feature.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFeatureSet(t *testing.T) {
	var s FeatureSet
	if s.Has(FeatureSixel) {
		t.Error("empty set has sixel")
	}

	s = s.With(FeatureSixel).With(FeatureDECSTBM)
	if !s.Has(FeatureSixel) || !s.Has(FeatureDECSTBM) {
		t.Errorf("set %b is missing added features", s)
	}
	if s.Has(FeaturePrinter) {
		t.Errorf("set %b has printer", s)
	}

	// Adding twice must not change the set.
	if again := s.With(FeatureSixel); again != s {
		t.Errorf("set changed from %b to %b", s, again)
	}
}

func TestFeatureSet_Names(t *testing.T) {
	tests := []struct {
		name     string
		set      FeatureSet
		expected []string
	}{
		{"empty", 0, nil},
		{
			"declaration order",
			FeatureSet(FeatureCaptureContour | Feature132Cols | FeatureNRCS | FeatureSixel),
			[]string{"132cols", "sixel", "nrcs", "capturecontour"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Names(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Names() = %v, want %v", got, tt.expected)
			}
		})
	}
}
