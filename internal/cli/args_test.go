package cli

import (
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/geom"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    geom.Point
		wantErr bool
	}{
		{name: "2d", input: "10,20", want: geom.Point{X: 10, Y: 20}},
		{name: "3d", input: "1,2,3", want: geom.Point{X: 1, Y: 2, Z: 3}},
		{name: "spaces", input: " 1.5 , -2 ", want: geom.Point{X: 1.5, Y: -2}},
		{name: "negative", input: "-10,-20", want: geom.Point{X: -10, Y: -20}},
		{name: "one coordinate", input: "10", wantErr: true},
		{name: "four coordinates", input: "1,2,3,4", wantErr: true},
		{name: "not a number", input: "a,b", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePoint(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePoint(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	if v, err := parseFloat(" 2.5 "); err != nil || v != 2.5 {
		t.Errorf("parseFloat(\" 2.5 \") = %v, %v", v, err)
	}
	if _, err := parseFloat("wide"); err == nil {
		t.Error("parseFloat(\"wide\") expected error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    cad.Color
		wantErr bool
	}{
		{input: "red", want: cad.ColorRed},
		{input: "Orange", want: cad.ColorOrange},
		{input: "142", want: cad.Color(142)},
		{input: "0", wantErr: true},
		{input: "256", wantErr: true},
		{input: "chartreuse", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseColor(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColor(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHandleArgs(t *testing.T) {
	handles := handleArgs([]string{"a", "b"})
	if len(handles) != 2 || handles[0] != cad.Handle("a") || handles[1] != cad.Handle("b") {
		t.Errorf("handleArgs = %v", handles)
	}
}
