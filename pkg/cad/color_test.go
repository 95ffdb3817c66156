package cad

import (
	"testing"

	"github.com/cadkit/cadkit/pkg/errors"
)

func TestColorFromName(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", ColorRed},
		{"RED", ColorRed},
		{"Orange", ColorOrange},
		{"brown", ColorBrown},
	}

	for _, tt := range tests {
		got, err := ColorFromName(tt.name)
		if err != nil {
			t.Errorf("ColorFromName(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorFromNameUnknown(t *testing.T) {
	_, err := ColorFromName("chartreuse")
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("ColorFromName(chartreuse) error = %v, want INVALID_COLOR", err)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorMagenta.String(); got != "magenta" {
		t.Errorf("String() = %q, want magenta", got)
	}
	if got := Color(100).String(); got != "aci-100" {
		t.Errorf("String() = %q, want aci-100", got)
	}
}

func TestColorValid(t *testing.T) {
	if !ColorWhite.Valid() || !Color(255).Valid() {
		t.Error("palette colors should be valid")
	}
	if Color(0).Valid() || Color(256).Valid() || Color(-1).Valid() {
		t.Error("out-of-range indices should be invalid")
	}
}

func TestObjectFilterMatches(t *testing.T) {
	o := Object{Handle: "h1", Type: EntityBlockReference, Layer: "Symbols", Block: "bolt"}

	tests := []struct {
		name   string
		filter ObjectFilter
		want   bool
	}{
		{"empty filter", ObjectFilter{}, true},
		{"type match", ObjectFilter{Type: EntityBlockReference}, true},
		{"type mismatch", ObjectFilter{Type: EntityLine}, false},
		{"layer match", ObjectFilter{Layer: "Symbols"}, true},
		{"layer mismatch", ObjectFilter{Layer: "0"}, false},
		{"block match", ObjectFilter{Block: "bolt"}, true},
		{"block mismatch", ObjectFilter{Block: "beam"}, false},
		{"combined", ObjectFilter{Type: EntityBlockReference, Layer: "Symbols", Block: "bolt"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(o); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
