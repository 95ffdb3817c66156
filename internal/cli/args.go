package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/geom"
)

// parsePoint parses "x,y" or "x,y,z" into a point.
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return geom.Point{}, fmt.Errorf("expected x,y or x,y,z, got %q", s)
	}

	coords := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geom.Point{}, fmt.Errorf("coordinate %q is not a number", part)
		}
		coords[i] = v
	}

	p := geom.Point{X: coords[0], Y: coords[1]}
	if len(coords) == 3 {
		p.Z = coords[2]
	}
	return p, nil
}

// parseFloat parses a numeric argument.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// parseColor accepts a palette name ("red") or a raw ACI index ("142").
func parseColor(s string) (cad.Color, error) {
	if n, err := strconv.Atoi(s); err == nil {
		c := cad.Color(n)
		if !c.Valid() {
			return 0, fmt.Errorf("color index %d out of range (1-255)", n)
		}
		return c, nil
	}
	return cad.ColorFromName(s)
}

// handleArgs converts positional args to handles.
func handleArgs(args []string) []cad.Handle {
	handles := make([]cad.Handle, len(args))
	for i, a := range args {
		handles[i] = cad.Handle(a)
	}
	return handles
}
