package cad

import (
	"strconv"
	"strings"

	"github.com/cadkit/cadkit/pkg/errors"
)

// Color is an ACI (AutoCAD Color Index) color code.
type Color int

// The named palette carried over from the host's standard index colors.
const (
	ColorRed     Color = 1
	ColorYellow  Color = 2
	ColorGreen   Color = 3
	ColorCyan    Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 8
	ColorOrange  Color = 30
	ColorPurple  Color = 40
	ColorBrown   Color = 41
)

var colorNames = map[string]Color{
	"red":     ColorRed,
	"yellow":  ColorYellow,
	"green":   ColorGreen,
	"cyan":    ColorCyan,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"white":   ColorWhite,
	"gray":    ColorGray,
	"orange":  ColorOrange,
	"purple":  ColorPurple,
	"brown":   ColorBrown,
}

// ColorFromName resolves a case-insensitive color name to its index code.
// Unknown names fail with an INVALID_COLOR error.
func ColorFromName(name string) (Color, error) {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidColor, "%q is not a valid color name", name)
}

// String returns the lowercase color name for palette colors, or the raw
// index for anything outside the named palette.
func (c Color) String() string {
	for name, code := range colorNames {
		if code == c {
			return name
		}
	}
	return "aci-" + strconv.Itoa(int(c))
}

// Valid reports whether the color is a usable ACI index (1..255).
func (c Color) Valid() bool {
	return c >= 1 && c <= 255
}
