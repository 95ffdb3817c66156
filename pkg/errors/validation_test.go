package errors

import (
	"strings"
	"testing"
)

func TestValidateSymbolName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Contours", false},
		{"valid with dash", "center-lines", false},
		{"valid with underscore", "dim_layer", false},
		{"valid with space", "Linea di mezzeria", false},
		{"valid with dollar", "A$C1234", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 300), true},
		{"forward slash", "foo/bar", true},
		{"backslash", `foo\bar`, true},
		{"wildcard star", "foo*", true},
		{"wildcard question", "foo?", true},
		{"pipe", "foo|bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbolName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSymbolName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAttributeTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid tag", "PART_NO", false},
		{"valid lowercase", "revision", false},

		{"empty", "", true},
		{"with space", "PART NO", true},
		{"with tab", "PART\tNO", true},
		{"with slash", "PART/NO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttributeTag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAttributeTag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "blocks/bolt.json", false},
		{"valid absolute", "/tmp/drawing.json", false},
		{"valid windows style", `C:\drawings\plan.json`, false},

		{"empty", "", true},
		{"too long", strings.Repeat("a/", 300), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHostURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid http", "http://localhost:8711", false},
		{"valid https", "https://cad.example.com", false},

		{"empty", "", true},
		{"no scheme", "localhost:8711", true},
		{"file scheme", "file:///etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHostURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHostURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
