package render

import (
	"context"
	"strings"
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/cad/memory"
	"github.com/cadkit/cadkit/pkg/geom"
)

func TestSVGEmptyDrawing(t *testing.T) {
	svg := string(SVG(memory.NewDocument().View()))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Errorf("missing svg root element:\n%s", svg)
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated svg document")
	}
}

func TestSVGEntities(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()

	if _, err := doc.AddLine(ctx, geom.P2(0, 0), geom.P2(100, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddCircle(ctx, geom.P2(50, 50), 10); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddRectangle(ctx, geom.P2(0, 0), geom.P2(20, 10)); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddText(ctx, cad.Text{Content: "a<b", Insertion: geom.P2(5, 5), Height: 2.5}); err != nil {
		t.Fatal(err)
	}

	svg := string(SVG(doc.View()))

	for _, want := range []string{"<line ", "<circle ", "<polyline ", "<text ", "a&lt;b"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSVGSkipsHiddenLayers(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()

	if err := doc.CreateLayer(ctx, cad.NewLayer("Construction", cad.ColorPurple)); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetActiveLayer(ctx, "Construction"); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddCircle(ctx, geom.P2(0, 0), 5); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetLayerVisibility(ctx, "Construction", false); err != nil {
		t.Fatal(err)
	}

	svg := string(SVG(doc.View()))
	if strings.Contains(svg, "<circle ") {
		t.Error("hidden layer entity was rendered")
	}
}

func TestSVGLayerColor(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()

	if err := doc.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorBlue)); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetActiveLayer(ctx, "Contours"); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddLine(ctx, geom.P2(0, 0), geom.P2(10, 10)); err != nil {
		t.Fatal(err)
	}

	svg := string(SVG(doc.View()))
	if !strings.Contains(svg, aciHex[cad.ColorBlue]) {
		t.Errorf("line not drawn in layer color:\n%s", svg)
	}
}

func TestSVGBlockReference(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()
	doc.DefineBlock(memory.BlockDef{Name: "bolt", Length: 10})

	if _, err := doc.InsertBlock(ctx, cad.BlockReference{Name: "bolt", Insertion: geom.P2(5, 5)}); err != nil {
		t.Fatal(err)
	}

	svg := string(SVG(doc.View()))
	if !strings.Contains(svg, "<rect ") || !strings.Contains(svg, ">bolt</text>") {
		t.Errorf("block footprint missing:\n%s", svg)
	}
}

func TestSVGOptions(t *testing.T) {
	svg := string(SVG(memory.NewDocument().View(),
		WithSize(1200, 800),
		WithBackground("#ffffff"),
	))

	if !strings.Contains(svg, `width="1200" height="800"`) {
		t.Error("size option not applied")
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("background option not applied")
	}
}
