package memory

import (
	"bytes"
	"context"
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

func TestNewDocumentHasDefaultLayer(t *testing.T) {
	d := NewDocument()

	layers, err := d.Layers(context.Background())
	if err != nil {
		t.Fatalf("Layers() error = %v", err)
	}
	if len(layers) != 1 || layers[0].Name != DefaultLayer {
		t.Fatalf("Layers() = %+v, want single layer %q", layers, DefaultLayer)
	}
	if d.ActiveLayer() != DefaultLayer {
		t.Errorf("ActiveLayer() = %q, want %q", d.ActiveLayer(), DefaultLayer)
	}
}

func TestCreateLayer(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	if err := d.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorBlue)); err != nil {
		t.Fatalf("CreateLayer() error = %v", err)
	}

	// Duplicate is rejected with a code the caller can branch on.
	err := d.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorRed))
	if !errors.Is(err, errors.ErrCodeDuplicate) {
		t.Errorf("duplicate CreateLayer() error = %v, want DUPLICATE", err)
	}

	// Zero color defaults to white, empty linetype to Continuous.
	if err := d.CreateLayer(ctx, cad.Layer{Name: "Bare", Visible: true}); err != nil {
		t.Fatalf("CreateLayer() error = %v", err)
	}
	layers, _ := d.Layers(ctx)
	for _, l := range layers {
		if l.Name == "Bare" {
			if l.Color != cad.ColorWhite {
				t.Errorf("bare layer color = %v, want white", l.Color)
			}
			if l.Linetype != cad.DefaultLinetype {
				t.Errorf("bare layer linetype = %q, want %q", l.Linetype, cad.DefaultLinetype)
			}
		}
	}
}

func TestDeleteLayer(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	if err := d.CreateLayer(ctx, cad.NewLayer("Scratch", cad.ColorRed)); err != nil {
		t.Fatalf("CreateLayer() error = %v", err)
	}

	if err := d.DeleteLayer(ctx, "Scratch"); err != nil {
		t.Fatalf("DeleteLayer() error = %v", err)
	}
	if err := d.DeleteLayer(ctx, "Scratch"); !errors.Is(err, errors.ErrCodeLayerNotFound) {
		t.Errorf("second DeleteLayer() error = %v, want LAYER_NOT_FOUND", err)
	}

	// The default layer cannot be deleted.
	if err := d.DeleteLayer(ctx, DefaultLayer); !errors.Is(err, errors.ErrCodeLayerInUse) {
		t.Errorf("DeleteLayer(%q) error = %v, want LAYER_IN_USE", DefaultLayer, err)
	}

	// A layer that still has entities cannot be deleted.
	if err := d.CreateLayer(ctx, cad.NewLayer("Busy", cad.ColorGreen)); err != nil {
		t.Fatal(err)
	}
	if err := d.SetActiveLayer(ctx, "Busy"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddLine(ctx, geom.P2(0, 0), geom.P2(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := d.SetActiveLayer(ctx, DefaultLayer); err != nil {
		t.Fatal(err)
	}
	if err := d.DeleteLayer(ctx, "Busy"); !errors.Is(err, errors.ErrCodeLayerInUse) {
		t.Errorf("DeleteLayer(busy) error = %v, want LAYER_IN_USE", err)
	}
}

func TestLayerProperties(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	if err := d.CreateLayer(ctx, cad.NewLayer("Axes", cad.ColorCyan)); err != nil {
		t.Fatal(err)
	}

	if err := d.SetLayerVisibility(ctx, "Axes", false); err != nil {
		t.Fatalf("SetLayerVisibility() error = %v", err)
	}
	if err := d.LockLayer(ctx, "Axes", true); err != nil {
		t.Fatalf("LockLayer() error = %v", err)
	}
	if err := d.SetLayerColor(ctx, "Axes", cad.ColorOrange); err != nil {
		t.Fatalf("SetLayerColor() error = %v", err)
	}
	if err := d.SetLayerLinetype(ctx, "Axes", "Dashed"); err != nil {
		t.Fatalf("SetLayerLinetype() error = %v", err)
	}

	layers, _ := d.Layers(ctx)
	var axes cad.Layer
	for _, l := range layers {
		if l.Name == "Axes" {
			axes = l
		}
	}
	if axes.Visible || !axes.Locked || axes.Color != cad.ColorOrange || axes.Linetype != "Dashed" {
		t.Errorf("layer state = %+v", axes)
	}

	// Property setters on a missing layer report LAYER_NOT_FOUND.
	if err := d.SetLayerColor(ctx, "Ghost", cad.ColorRed); !errors.Is(err, errors.ErrCodeLayerNotFound) {
		t.Errorf("SetLayerColor(ghost) error = %v, want LAYER_NOT_FOUND", err)
	}
}

func TestEntitiesOnActiveLayer(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	if err := d.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorBlue)); err != nil {
		t.Fatal(err)
	}
	if err := d.SetActiveLayer(ctx, "Contours"); err != nil {
		t.Fatal(err)
	}

	h, err := d.AddCircle(ctx, geom.P2(5, 5), 2)
	if err != nil {
		t.Fatalf("AddCircle() error = %v", err)
	}

	objects, err := d.Objects(ctx, cad.ObjectFilter{Layer: "Contours"})
	if err != nil {
		t.Fatalf("Objects() error = %v", err)
	}
	if len(objects) != 1 || objects[0].Handle != h {
		t.Fatalf("Objects() = %+v, want one circle %q", objects, h)
	}
	if objects[0].Type != cad.EntityCircle {
		t.Errorf("object type = %q, want circle", objects[0].Type)
	}
}

func TestLockedLayerRejectsMutation(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	h, err := d.AddLine(ctx, geom.P2(0, 0), geom.P2(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.LockLayer(ctx, DefaultLayer, true); err != nil {
		t.Fatal(err)
	}

	if _, err := d.AddCircle(ctx, geom.P2(0, 0), 1); !errors.Is(err, errors.ErrCodeLayerLocked) {
		t.Errorf("AddCircle() on locked layer error = %v, want LAYER_LOCKED", err)
	}
	if err := d.Move(ctx, h, geom.P2(1, 1)); !errors.Is(err, errors.ErrCodeLayerLocked) {
		t.Errorf("Move() on locked layer error = %v, want LAYER_LOCKED", err)
	}
	if err := d.DeleteObject(ctx, h); !errors.Is(err, errors.ErrCodeLayerLocked) {
		t.Errorf("DeleteObject() on locked layer error = %v, want LAYER_LOCKED", err)
	}

	// A clone would land on the locked layer, so it is rejected too.
	if _, err := d.CloneObject(ctx, h, geom.P2(20, 0)); !errors.Is(err, errors.ErrCodeLayerLocked) {
		t.Errorf("CloneObject() on locked layer error = %v, want LAYER_LOCKED", err)
	}
	if objects, _ := d.Objects(ctx, cad.ObjectFilter{}); len(objects) != 1 {
		t.Errorf("Objects() = %d entities after rejected clone, want 1", len(objects))
	}

	// Unlock and the same operations succeed.
	if err := d.LockLayer(ctx, DefaultLayer, false); err != nil {
		t.Fatal(err)
	}
	if err := d.Move(ctx, h, geom.P2(1, 1)); err != nil {
		t.Errorf("Move() after unlock error = %v", err)
	}
	if _, err := d.CloneObject(ctx, h, geom.P2(20, 0)); err != nil {
		t.Errorf("CloneObject() after unlock error = %v", err)
	}
}

func TestMoveTranslatesGeometry(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	h, err := d.AddLine(ctx, geom.P2(0, 0), geom.P2(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Move(ctx, h, geom.P(5, 5, 1)); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	objects, _ := d.Objects(ctx, cad.ObjectFilter{})
	if objects[0].Insertion != geom.P(5, 5, 1) {
		t.Errorf("insertion = %v, want (5, 5, 1)", objects[0].Insertion)
	}

	// The far endpoint rode along.
	e := d.byHandle[h]
	if e.Points[1] != geom.P(15, 5, 1) {
		t.Errorf("end point = %v, want (15, 5, 1)", e.Points[1])
	}
}

func TestScaleAboutBase(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	h, err := d.AddCircle(ctx, geom.P2(10, 0), 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Scale(ctx, h, geom.P2(0, 0), 2); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}

	e := d.byHandle[h]
	if e.Insertion != geom.P2(20, 0) {
		t.Errorf("center = %v, want (20, 0, 0)", e.Insertion)
	}
	if e.Radius != 4 {
		t.Errorf("radius = %v, want 4", e.Radius)
	}
}

func TestRotateAboutBase(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	h, err := d.AddCircle(ctx, geom.P2(10, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	// Quarter turn about the origin: (10,0) lands on (0,10).
	if err := d.Rotate(ctx, h, geom.P2(0, 0), 1.5707963267948966); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}

	e := d.byHandle[h]
	if e.Insertion.Distance(geom.P2(0, 10)) > 1e-9 {
		t.Errorf("center = %v, want ~(0, 10, 0)", e.Insertion)
	}
}

func TestCloneObject(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	h, err := d.AddCircle(ctx, geom.P2(0, 0), 3)
	if err != nil {
		t.Fatal(err)
	}
	clone, err := d.CloneObject(ctx, h, geom.P2(50, 0))
	if err != nil {
		t.Fatalf("CloneObject() error = %v", err)
	}
	if clone == h {
		t.Fatal("clone reused the source handle")
	}

	objects, _ := d.Objects(ctx, cad.ObjectFilter{Type: cad.EntityCircle})
	if len(objects) != 2 {
		t.Fatalf("Objects() = %d circles, want 2", len(objects))
	}
	if d.byHandle[clone].Insertion != geom.P2(50, 0) {
		t.Errorf("clone insertion = %v, want (50, 0, 0)", d.byHandle[clone].Insertion)
	}
	if d.byHandle[clone].Radius != 3 {
		t.Errorf("clone radius = %v, want 3", d.byHandle[clone].Radius)
	}
}

func TestDeleteObjectRemovesFromGroups(t *testing.T) {
	ctx := context.Background()
	d := NewDocument()

	a, _ := d.AddLine(ctx, geom.P2(0, 0), geom.P2(1, 0))
	b, _ := d.AddLine(ctx, geom.P2(0, 1), geom.P2(1, 1))
	if err := d.CreateGroup(ctx, "pair", []cad.Handle{a, b}); err != nil {
		t.Fatal(err)
	}

	if err := d.DeleteObject(ctx, a); err != nil {
		t.Fatalf("DeleteObject() error = %v", err)
	}

	members, err := d.GroupMembers(ctx, "pair")
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 || members[0] != b {
		t.Errorf("GroupMembers() = %v, want [%v]", members, b)
	}

	if _, err := d.Objects(ctx, cad.ObjectFilter{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Move(ctx, a, geom.P2(0, 0)); !errors.Is(err, errors.ErrCodeEntityNotFound) {
		t.Errorf("Move(deleted) error = %v, want ENTITY_NOT_FOUND", err)
	}
}

func TestShowMessage(t *testing.T) {
	var buf bytes.Buffer
	d := NewDocument(WithMessageWriter(&buf))

	if err := d.ShowMessage(context.Background(), "insert point selected"); err != nil {
		t.Fatalf("ShowMessage() error = %v", err)
	}
	if got := buf.String(); got != "insert point selected\n" {
		t.Errorf("message output = %q", got)
	}
}

func TestPrompts(t *testing.T) {
	ctx := context.Background()

	// Without a prompter, prompts are unsupported.
	bare := NewDocument()
	if _, err := bare.PromptInt(ctx, "How many?"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("PromptInt() without prompter error = %v, want UNSUPPORTED", err)
	}

	script := NewScriptedPrompter().
		QueuePoint(geom.P2(3, 4)).
		QueueString("Contours").
		QueueInt(7)
	d := NewDocument(WithPrompter(script))

	p, err := d.PromptPoint(ctx, "Pick a point")
	if err != nil || p != geom.P2(3, 4) {
		t.Errorf("PromptPoint() = %v, %v", p, err)
	}
	s, err := d.PromptString(ctx, "Layer name")
	if err != nil || s != "Contours" {
		t.Errorf("PromptString() = %q, %v", s, err)
	}
	n, err := d.PromptInt(ctx, "Count")
	if err != nil || n != 7 {
		t.Errorf("PromptInt() = %d, %v", n, err)
	}

	// The script is exhausted now.
	if _, err := d.PromptInt(ctx, "Again"); !errors.Is(err, errors.ErrCodePromptCancelled) {
		t.Errorf("exhausted PromptInt() error = %v, want PROMPT_CANCELLED", err)
	}
}
