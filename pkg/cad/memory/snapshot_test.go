package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

func TestSaveAsOpenRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "plan.json")

	src := NewDocument()
	if err := src.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorBlue)); err != nil {
		t.Fatal(err)
	}
	if err := src.SetActiveLayer(ctx, "Contours"); err != nil {
		t.Fatal(err)
	}
	line, err := src.AddLine(ctx, geom.P2(0, 0), geom.P2(100, 0))
	if err != nil {
		t.Fatal(err)
	}
	src.DefineBlock(BlockDef{Name: "bolt", Length: 10})
	ref, err := src.InsertBlock(ctx, cad.BlockReference{Name: "bolt", Insertion: geom.P2(10, 10)})
	if err != nil {
		t.Fatal(err)
	}
	if err := src.CreateGroup(ctx, "frame", []cad.Handle{line, ref}); err != nil {
		t.Fatal(err)
	}

	if err := src.SaveAs(ctx, path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}

	dst := NewDocument()
	if err := dst.Open(ctx, path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if dst.ActiveLayer() != "Contours" {
		t.Errorf("ActiveLayer() = %q, want Contours", dst.ActiveLayer())
	}

	objects, _ := dst.Objects(ctx, cad.ObjectFilter{})
	if len(objects) != 2 {
		t.Fatalf("Objects() = %d, want 2", len(objects))
	}

	members, err := dst.GroupMembers(ctx, "frame")
	if err != nil {
		t.Fatalf("GroupMembers() error = %v", err)
	}
	if len(members) != 2 {
		t.Errorf("GroupMembers() = %v, want 2 members", members)
	}

	// Handles survive the round trip, so transforms keep working.
	if err := dst.Move(ctx, line, geom.P2(5, 5)); err != nil {
		t.Errorf("Move() after Open error = %v", err)
	}

	// The block table came along too.
	if _, err := dst.InsertBlock(ctx, cad.BlockReference{Name: "bolt"}); err != nil {
		t.Errorf("InsertBlock() after Open error = %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	d := NewDocument()
	err := d.Open(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Open(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestOpenRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "active_layer": "0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDocument()
	if err := d.Open(context.Background(), path); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Open(v99) error = %v, want UNSUPPORTED", err)
	}
}

func TestOpenReplacesState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.json")

	empty := NewDocument()
	if err := empty.SaveAs(ctx, path); err != nil {
		t.Fatal(err)
	}

	d := NewDocument()
	if _, err := d.AddCircle(ctx, geom.P2(0, 0), 1); err != nil {
		t.Fatal(err)
	}
	if err := d.Open(ctx, path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	objects, _ := d.Objects(ctx, cad.ObjectFilter{})
	if len(objects) != 0 {
		t.Errorf("Objects() after opening empty drawing = %d, want 0", len(objects))
	}
}
