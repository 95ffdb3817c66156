package cadhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/cad/memory"
	"github.com/cadkit/cadkit/pkg/cadhttp"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

// bridge spins up an in-process server over doc and returns a session
// connected to it.
func bridge(t *testing.T, doc *memory.Document) cad.Session {
	t.Helper()

	srv := httptest.NewServer(cadhttp.NewServer(doc))
	t.Cleanup(srv.Close)

	session, err := cadhttp.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return session
}

func TestNewClientRejectsBadURL(t *testing.T) {
	tests := []string{"", "ftp://host", "host:8437", "http://\x00"}
	for _, raw := range tests {
		if _, err := cadhttp.NewClient(raw); err == nil {
			t.Errorf("NewClient(%q) succeeded, want error", raw)
		}
	}
}

func TestBridgeLayers(t *testing.T) {
	ctx := context.Background()
	session := bridge(t, memory.NewDocument())

	if err := session.CreateLayer(ctx, cad.NewLayer("Contours", cad.ColorBlue)); err != nil {
		t.Fatalf("CreateLayer() error = %v", err)
	}
	if err := session.SetActiveLayer(ctx, "Contours"); err != nil {
		t.Fatalf("SetActiveLayer() error = %v", err)
	}
	if err := session.SetLayerColor(ctx, "Contours", cad.ColorRed); err != nil {
		t.Fatalf("SetLayerColor() error = %v", err)
	}

	layers, err := session.Layers(ctx)
	if err != nil {
		t.Fatalf("Layers() error = %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("Layers() = %d layers, want 2", len(layers))
	}
	if layers[1].Name != "Contours" || layers[1].Color != cad.ColorRed {
		t.Errorf("layer = %+v, want red Contours", layers[1])
	}
}

func TestBridgeEntities(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()
	session := bridge(t, doc)

	line, err := session.AddLine(ctx, geom.P2(0, 0), geom.P2(100, 0))
	if err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if _, err := session.AddCircle(ctx, geom.P2(50, 50), 10); err != nil {
		t.Fatalf("AddCircle() error = %v", err)
	}

	if err := session.Move(ctx, line, geom.P2(5, 5)); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	objects, err := session.Objects(ctx, cad.ObjectFilter{Type: cad.EntityLine})
	if err != nil {
		t.Fatalf("Objects() error = %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("Objects(line) = %d, want 1", len(objects))
	}
	if objects[0].Insertion != geom.P2(5, 5) {
		t.Errorf("insertion = %v, want (5, 5, 0)", objects[0].Insertion)
	}

	clone, err := session.CloneObject(ctx, line, geom.P2(0, 20))
	if err != nil {
		t.Fatalf("CloneObject() error = %v", err)
	}
	if clone == line {
		t.Error("clone shares the source handle")
	}
	if err := session.DeleteObject(ctx, clone); err != nil {
		t.Errorf("DeleteObject() error = %v", err)
	}
}

// Structured error codes survive the HTTP round trip.
func TestBridgeErrorCodes(t *testing.T) {
	ctx := context.Background()
	session := bridge(t, memory.NewDocument())

	tests := []struct {
		name string
		call func() error
		want errors.Code
	}{
		{
			"missing layer",
			func() error { return session.SetActiveLayer(ctx, "ghost") },
			errors.ErrCodeLayerNotFound,
		},
		{
			"missing entity",
			func() error { return session.Move(ctx, "nope", geom.P2(0, 0)) },
			errors.ErrCodeEntityNotFound,
		},
		{
			"undefined block",
			func() error { _, err := session.InsertBlock(ctx, cad.BlockReference{Name: "ghost"}); return err },
			errors.ErrCodeBlockNotFound,
		},
		{
			"duplicate layer",
			func() error { return session.CreateLayer(ctx, cad.NewLayer("0", cad.ColorWhite)) },
			errors.ErrCodeDuplicate,
		},
		{
			"prompt without prompter",
			func() error { _, err := session.PromptPoint(ctx, "pick"); return err },
			errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestBridgeBlocksAndGroups(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()
	doc.DefineBlock(memory.BlockDef{
		Name:       "bolt",
		Length:     10,
		Attributes: []cad.Attribute{{Tag: "PART_NO", Value: "M8"}},
	})
	session := bridge(t, doc)

	ref, err := session.InsertBlock(ctx, cad.BlockReference{Name: "bolt", Insertion: geom.P2(5, 5)})
	if err != nil {
		t.Fatalf("InsertBlock() error = %v", err)
	}

	names, err := session.BlockNames(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "bolt" {
		t.Errorf("BlockNames() = %v", names)
	}

	if err := session.SetBlockAttribute(ctx, ref, "PART_NO", "M10"); err != nil {
		t.Fatalf("SetBlockAttribute() error = %v", err)
	}
	attrs, err := session.BlockAttributes(ctx, ref)
	if err != nil {
		t.Fatal(err)
	}
	if len(attrs) != 1 || attrs[0].Value != "M10" {
		t.Errorf("BlockAttributes() = %+v", attrs)
	}

	if err := session.CreateGroup(ctx, "fasteners", []cad.Handle{ref}); err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	members, err := session.GroupMembers(ctx, "fasteners")
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 || members[0] != ref {
		t.Errorf("GroupMembers() = %v", members)
	}
}

// The full drafting client runs unchanged against a remote host.
func TestBridgeWithDraftingClient(t *testing.T) {
	ctx := context.Background()
	doc := memory.NewDocument()
	doc.DefineBlock(memory.BlockDef{Name: "brick", Length: 10})

	client := cad.NewClient(bridge(t, doc))

	handles, err := client.RepeatBlockHorizontally(ctx, "brick", 95, 10, geom.P2(0, 0))
	if err != nil {
		t.Fatalf("RepeatBlockHorizontally() error = %v", err)
	}
	if len(handles) != 9 {
		t.Fatalf("inserted %d references, want 9", len(handles))
	}

	points, err := client.BlockCoordinates(ctx, "brick")
	if err != nil {
		t.Fatal(err)
	}
	if points[8] != geom.P2(80, 0) {
		t.Errorf("last reference at %v, want (80, 0, 0)", points[8])
	}
}

func TestBridgePrompts(t *testing.T) {
	ctx := context.Background()

	prompter := memory.NewScriptedPrompter().
		QueuePoint(geom.P2(3, 4)).
		QueueString("Contours").
		QueueInt(7)
	doc := memory.NewDocument(memory.WithPrompter(prompter))
	session := bridge(t, doc)

	p, err := session.PromptPoint(ctx, "pick a point")
	if err != nil || p != geom.P2(3, 4) {
		t.Errorf("PromptPoint() = %v, %v", p, err)
	}
	s, err := session.PromptString(ctx, "layer name")
	if err != nil || s != "Contours" {
		t.Errorf("PromptString() = %q, %v", s, err)
	}
	n, err := session.PromptInt(ctx, "count")
	if err != nil || n != 7 {
		t.Errorf("PromptInt() = %d, %v", n, err)
	}

	// Queue exhausted.
	if _, err := session.PromptInt(ctx, "count"); !errors.Is(err, errors.ErrCodePromptCancelled) {
		t.Errorf("exhausted prompt error = %v, want PROMPT_CANCELLED", err)
	}
}

func TestBridgeDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/plan.json"

	doc := memory.NewDocument()
	session := bridge(t, doc)

	if _, err := session.AddLine(ctx, geom.P2(0, 0), geom.P2(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := session.SaveAs(ctx, path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}

	fresh := memory.NewDocument()
	restored := bridge(t, fresh)
	if err := restored.Open(ctx, path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	objects, _ := fresh.Objects(ctx, cad.ObjectFilter{})
	if len(objects) != 1 {
		t.Errorf("restored %d objects, want 1", len(objects))
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(cadhttp.NewServer(memory.NewDocument()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("GET /healthz = %d, want 204", resp.StatusCode)
	}
}
