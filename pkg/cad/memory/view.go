package memory

import (
	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/geom"
)

// EntityView is a read-only copy of one entity's full geometry. The
// [cad.Object] query view deliberately stops at insertion points; renderers
// and inspectors need the rest.
type EntityView struct {
	Handle    cad.Handle
	Type      cad.EntityType
	Layer     string
	Insertion geom.Point
	Points    []geom.Point
	Radius    float64
	Ratio     float64
	Text      string
	Height    float64
	Block     string
	Scale     float64
	Rotation  float64
}

// View is a point-in-time copy of the drawable document state.
type View struct {
	ActiveLayer  string
	Layers       []cad.Layer
	Entities     []EntityView
	BlockLengths map[string]float64
}

// View copies the current document state for rendering.
func (d *Document) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := View{
		ActiveLayer:  d.active,
		BlockLengths: make(map[string]float64, len(d.blocks)),
	}
	for _, name := range d.layerOrder {
		v.Layers = append(v.Layers, *d.layers[name])
	}
	for _, e := range d.entities {
		v.Entities = append(v.Entities, EntityView{
			Handle:    e.Handle,
			Type:      e.Type,
			Layer:     e.Layer,
			Insertion: e.Insertion,
			Points:    append([]geom.Point(nil), e.Points...),
			Radius:    e.Radius,
			Ratio:     e.Ratio,
			Text:      e.Text,
			Height:    e.Height,
			Block:     e.Block,
			Scale:     e.Scale,
			Rotation:  e.Rotation,
		})
	}
	for name, def := range d.blocks {
		v.BlockLengths[name] = def.Length
	}
	return v
}
