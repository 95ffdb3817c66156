package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/cad/memory"
)

const defaultBackground = "#14171c"

// aciHex maps the named palette colors to display hex values. Unnamed
// indices fall back to a neutral gray.
var aciHex = map[cad.Color]string{
	cad.ColorRed:     "#ff4136",
	cad.ColorYellow:  "#ffdc00",
	cad.ColorGreen:   "#2ecc40",
	cad.ColorCyan:    "#39cccc",
	cad.ColorBlue:    "#4d8fff",
	cad.ColorMagenta: "#f012be",
	cad.ColorWhite:   "#f4f4f4",
	cad.ColorOrange:  "#ff851b",
	cad.ColorPurple:  "#b10dc9",
	cad.ColorBrown:   "#a05a2a",
}

func hexFor(c cad.Color) string {
	if hex, ok := aciHex[c]; ok {
		return hex
	}
	return "#c8c8c8"
}

// SVGOption customizes the preview output.
type SVGOption func(*svgRenderer)

// WithSize sets the pixel size of the output image.
func WithSize(width, height int) SVGOption {
	return func(r *svgRenderer) {
		r.width = width
		r.height = height
	}
}

// WithBackground overrides the model-space background color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithMargin sets the padding around the drawing extents, in drawing units.
func WithMargin(margin float64) SVGOption {
	return func(r *svgRenderer) { r.margin = margin }
}

type svgRenderer struct {
	width      int
	height     int
	margin     float64
	background string
}

// SVG renders the drawing view as a standalone SVG image. Entities on
// hidden layers are skipped; an empty drawing renders as a blank frame.
func SVG(view memory.View, opts ...SVGOption) []byte {
	r := svgRenderer{
		width:      800,
		height:     600,
		margin:     10,
		background: defaultBackground,
	}
	for _, opt := range opts {
		opt(&r)
	}

	colors := layerColors(view)
	visible := visibleEntities(view)

	minX, minY, maxX, maxY := extents(view, visible)
	minX -= r.margin
	minY -= r.margin
	maxX += r.margin
	maxY += r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%d" height="%d">`+"\n",
		minX, -maxY, maxX-minX, maxY-minY, r.width, r.height)
	fmt.Fprintf(&buf,
		"  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
		minX, -maxY, maxX-minX, maxY-minY, r.background)

	// Model space has Y up; flip into SVG's Y-down space once, then every
	// coordinate can be emitted as-is.
	buf.WriteString("  <g transform=\"scale(1,-1)\" fill=\"none\" stroke-width=\"0.5\" " +
		"font-family=\"monospace\">\n")
	for _, e := range visible {
		renderEntity(&buf, e, colors[e.Layer], view.BlockLengths)
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func layerColors(view memory.View) map[string]string {
	colors := make(map[string]string, len(view.Layers))
	for _, l := range view.Layers {
		colors[l.Name] = hexFor(l.Color)
	}
	return colors
}

func visibleEntities(view memory.View) []memory.EntityView {
	hidden := map[string]bool{}
	for _, l := range view.Layers {
		if !l.Visible {
			hidden[l.Name] = true
		}
	}

	visible := make([]memory.EntityView, 0, len(view.Entities))
	for _, e := range view.Entities {
		if !hidden[e.Layer] {
			visible = append(visible, e)
		}
	}
	return visible
}

// extents computes the drawing bounding box over the given entities.
func extents(view memory.View, entities []memory.EntityView) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, e := range entities {
		grow(e.Insertion.X, e.Insertion.Y)
		for _, p := range e.Points {
			if e.Type == cad.EntityEllipse {
				// Relative major-axis endpoint.
				grow(e.Insertion.X+p.X, e.Insertion.Y+p.Y)
				grow(e.Insertion.X-p.X, e.Insertion.Y-p.Y)
				continue
			}
			grow(p.X, p.Y)
		}
		switch e.Type {
		case cad.EntityCircle:
			grow(e.Insertion.X-e.Radius, e.Insertion.Y-e.Radius)
			grow(e.Insertion.X+e.Radius, e.Insertion.Y+e.Radius)
		case cad.EntityBlockReference:
			length := view.BlockLengths[e.Block] * blockScale(e)
			grow(e.Insertion.X+length, e.Insertion.Y+length)
		}
	}

	if minX > maxX {
		// Empty drawing.
		return 0, 0, 100, 100
	}
	return minX, minY, maxX, maxY
}

func blockScale(e memory.EntityView) float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

func renderEntity(buf *bytes.Buffer, e memory.EntityView, color string, blockLengths map[string]float64) {
	if color == "" {
		color = "#c8c8c8"
	}

	switch e.Type {
	case cad.EntityLine:
		if len(e.Points) == 2 {
			fmt.Fprintf(buf,
				"    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\"/>\n",
				e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y, color)
		}

	case cad.EntityCircle:
		fmt.Fprintf(buf,
			"    <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" stroke=\"%s\"/>\n",
			e.Insertion.X, e.Insertion.Y, e.Radius, color)

	case cad.EntityEllipse:
		renderEllipse(buf, e, color)

	case cad.EntityPolyline:
		renderPolyline(buf, e, color)

	case cad.EntityText:
		renderText(buf, e.Insertion.X, e.Insertion.Y, e.Height, e.Rotation, color, e.Text)

	case cad.EntityDimension:
		renderDimension(buf, e, color)

	case cad.EntityBlockReference:
		renderBlockRef(buf, e, color, blockLengths[e.Block])
	}
}

func renderEllipse(buf *bytes.Buffer, e memory.EntityView, color string) {
	if len(e.Points) == 0 {
		return
	}
	major := math.Hypot(e.Points[0].X, e.Points[0].Y)
	minor := major * e.Ratio
	angle := math.Atan2(e.Points[0].Y, e.Points[0].X) * 180 / math.Pi
	fmt.Fprintf(buf,
		"    <ellipse cx=\"%.2f\" cy=\"%.2f\" rx=\"%.2f\" ry=\"%.2f\" transform=\"rotate(%.2f %.2f %.2f)\" stroke=\"%s\"/>\n",
		e.Insertion.X, e.Insertion.Y, major, minor, angle, e.Insertion.X, e.Insertion.Y, color)
}

func renderPolyline(buf *bytes.Buffer, e memory.EntityView, color string) {
	if len(e.Points) == 0 {
		return
	}
	buf.WriteString("    <polyline points=\"")
	for i, p := range e.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(buf, "\" stroke=\"%s\"/>\n", color)
}

// renderText emits a text element. The outer group is Y-flipped, so text
// needs its own local flip to stay readable.
func renderText(buf *bytes.Buffer, x, y, height, rotation float64, color, content string) {
	if height <= 0 {
		height = 2.5
	}
	fmt.Fprintf(buf,
		"    <text x=\"0\" y=\"0\" transform=\"translate(%.2f %.2f) rotate(%.2f) scale(1,-1)\" font-size=\"%.2f\" fill=\"%s\">%s</text>\n",
		x, y, -rotation*180/math.Pi, height, color, escapeText(content))
}

func renderDimension(buf *bytes.Buffer, e memory.EntityView, color string) {
	if len(e.Points) != 2 {
		return
	}
	a, b := e.Points[0], e.Points[1]
	fmt.Fprintf(buf,
		"    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-dasharray=\"2,1\"/>\n",
		a.X, a.Y, b.X, b.Y, color)
	renderText(buf, e.Insertion.X, e.Insertion.Y, 2.5, 0, color, fmt.Sprintf("%.4g", a.Distance(b)))
}

// renderBlockRef draws the reference's X footprint as a square outline with
// the block name at the insertion corner.
func renderBlockRef(buf *bytes.Buffer, e memory.EntityView, color string, length float64) {
	size := length * blockScale(e)
	if size <= 0 {
		size = 5
	}
	fmt.Fprintf(buf,
		"    <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" transform=\"rotate(%.2f %.2f %.2f)\" stroke=\"%s\" stroke-dasharray=\"1,1\"/>\n",
		e.Insertion.X, e.Insertion.Y, size, size,
		e.Rotation*180/math.Pi, e.Insertion.X, e.Insertion.Y, color)
	renderText(buf, e.Insertion.X+size/10, e.Insertion.Y+size/10, size/5, 0, color, e.Block)
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
