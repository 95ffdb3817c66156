package memory

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/geom"
)

// entity is the document's record of one model-space object. The JSON shape
// doubles as the snapshot format.
type entity struct {
	Handle    cad.Handle     `json:"handle"`
	Type      cad.EntityType `json:"type"`
	Layer     string         `json:"layer"`
	Insertion geom.Point     `json:"insertion"`

	// Geometry payload, by type:
	//   line:      Points[0..1] = endpoints (Insertion == Points[0])
	//   polyline:  Points = vertices
	//   ellipse:   Points[0] = major axis endpoint relative to center
	//   dimension: Points[0..1] = measured points, Insertion = text position
	Points []geom.Point `json:"points,omitempty"`

	Radius    float64         `json:"radius,omitempty"`    // circle
	Ratio     float64         `json:"ratio,omitempty"`     // ellipse minor/major
	Text      string          `json:"text,omitempty"`      // text content
	Height    float64         `json:"height,omitempty"`    // text height
	Alignment cad.Alignment   `json:"alignment,omitempty"` // text alignment
	Block     string          `json:"block,omitempty"`     // block reference name
	Scale     float64         `json:"scale,omitempty"`     // block reference scale
	Rotation  float64         `json:"rotation,omitempty"`  // radians
	Attrs     []cad.Attribute `json:"attrs,omitempty"`     // block reference attributes
}

// object converts the record to the wrapper's query view.
func (e *entity) object() cad.Object {
	return cad.Object{
		Handle:    e.Handle,
		Type:      e.Type,
		Layer:     e.Layer,
		Insertion: e.Insertion,
		Block:     e.Block,
	}
}

// clone returns a deep copy with a fresh handle.
func (e *entity) clone() *entity {
	c := *e
	c.Handle = newHandle()
	c.Points = append([]geom.Point(nil), e.Points...)
	c.Attrs = append([]cad.Attribute(nil), e.Attrs...)
	return &c
}

func newHandle() cad.Handle {
	return cad.Handle(uuid.NewString())
}

// add appends the entity on the active layer. Callers hold d.mu.
func (d *Document) add(e *entity) (cad.Handle, error) {
	e.Handle = newHandle()
	e.Layer = d.active
	if err := d.lockedLayer(e); err != nil {
		return "", err
	}
	d.entities = append(d.entities, e)
	d.byHandle[e.Handle] = e
	return e.Handle, nil
}

// =============================================================================
// Entity creation
// =============================================================================

// AddLine appends a line entity.
func (d *Document) AddLine(_ context.Context, start, end geom.Point) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.add(&entity{
		Type:      cad.EntityLine,
		Insertion: start,
		Points:    []geom.Point{start, end},
	})
}

// AddCircle appends a circle entity.
func (d *Document) AddCircle(_ context.Context, center geom.Point, radius float64) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.add(&entity{
		Type:      cad.EntityCircle,
		Insertion: center,
		Radius:    radius,
	})
}

// AddEllipse appends an ellipse entity.
func (d *Document) AddEllipse(_ context.Context, center, majorAxis geom.Point, ratio float64) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.add(&entity{
		Type:      cad.EntityEllipse,
		Insertion: center,
		Points:    []geom.Point{majorAxis},
		Ratio:     ratio,
	})
}

// AddRectangle appends a closed polyline through the rectangle's corners on
// the Z=0 plane, lower-left first, counter-clockwise.
func (d *Document) AddRectangle(_ context.Context, lowerLeft, upperRight geom.Point) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ll := geom.P2(lowerLeft.X, lowerLeft.Y)
	ur := geom.P2(upperRight.X, upperRight.Y)
	return d.add(&entity{
		Type:      cad.EntityPolyline,
		Insertion: ll,
		Points: []geom.Point{
			ll,
			geom.P2(ur.X, ll.Y),
			ur,
			geom.P2(ll.X, ur.Y),
			ll,
		},
	})
}

// AddText appends a single-line text entity.
func (d *Document) AddText(_ context.Context, text cad.Text) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	alignment := text.Alignment
	if alignment == "" {
		alignment = cad.AlignLeft
	}
	return d.add(&entity{
		Type:      cad.EntityText,
		Insertion: text.Insertion,
		Text:      text.Content,
		Height:    text.Height,
		Alignment: alignment,
	})
}

// AddDimension appends an aligned dimension entity.
func (d *Document) AddDimension(_ context.Context, dim cad.Dimension) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.add(&entity{
		Type:      cad.EntityDimension,
		Insertion: dim.TextPosition,
		Points:    []geom.Point{dim.Start, dim.End},
	})
}

// DeleteObject removes an entity from model space and from any groups.
func (d *Document) DeleteObject(_ context.Context, h cad.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.find(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	delete(d.byHandle, h)
	for i, cand := range d.entities {
		if cand == e {
			d.entities = append(d.entities[:i], d.entities[i+1:]...)
			break
		}
	}
	for name, members := range d.groups {
		d.groups[name] = removeHandle(members, h)
	}
	return nil
}

// CloneObject deep-copies an entity and moves the copy so its insertion
// reference lands on the given point.
func (d *Document) CloneObject(_ context.Context, h cad.Handle, insertion geom.Point) (cad.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.find(h)
	if err != nil {
		return "", err
	}
	if err := d.lockedLayer(e); err != nil {
		return "", err
	}

	c := e.clone()
	c.translate(insertion.X-c.Insertion.X, insertion.Y-c.Insertion.Y, insertion.Z-c.Insertion.Z)
	d.entities = append(d.entities, c)
	d.byHandle[c.Handle] = c
	return c.Handle, nil
}

// Objects returns the filtered model-space contents in creation order.
func (d *Document) Objects(_ context.Context, filter cad.ObjectFilter) ([]cad.Object, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := []cad.Object{}
	for _, e := range d.entities {
		if o := e.object(); filter.Matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

// =============================================================================
// Transforms
// =============================================================================

// Move translates an entity so its insertion reference lands on the target.
func (d *Document) Move(_ context.Context, h cad.Handle, to geom.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.find(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	e.translate(to.X-e.Insertion.X, to.Y-e.Insertion.Y, to.Z-e.Insertion.Z)
	return nil
}

// Scale scales an entity about a base point.
func (d *Document) Scale(_ context.Context, h cad.Handle, base geom.Point, factor float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.find(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	scaleAbout := func(p geom.Point) geom.Point {
		return geom.Point{
			X: base.X + (p.X-base.X)*factor,
			Y: base.Y + (p.Y-base.Y)*factor,
			Z: base.Z + (p.Z-base.Z)*factor,
		}
	}
	e.Insertion = scaleAbout(e.Insertion)
	for i, p := range e.Points {
		e.Points[i] = scaleAbout(p)
	}
	e.Radius *= factor
	e.Height *= factor
	if e.Type == cad.EntityBlockReference {
		if e.Scale == 0 {
			e.Scale = 1
		}
		e.Scale *= factor
	}
	return nil
}

// Rotate rotates an entity about a base point in the XY plane.
func (d *Document) Rotate(_ context.Context, h cad.Handle, base geom.Point, angle float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, err := d.find(h)
	if err != nil {
		return err
	}
	if err := d.lockedLayer(e); err != nil {
		return err
	}

	sin, cos := math.Sin(angle), math.Cos(angle)
	rotateAbout := func(p geom.Point) geom.Point {
		dx, dy := p.X-base.X, p.Y-base.Y
		return geom.Point{
			X: base.X + dx*cos - dy*sin,
			Y: base.Y + dx*sin + dy*cos,
			Z: p.Z,
		}
	}
	e.Insertion = rotateAbout(e.Insertion)
	for i, p := range e.Points {
		e.Points[i] = rotateAbout(p)
	}
	switch e.Type {
	case cad.EntityBlockReference, cad.EntityText:
		e.Rotation += angle
	}
	return nil
}

// translate shifts the entity and all its geometry by the given deltas.
func (e *entity) translate(dx, dy, dz float64) {
	e.Insertion = e.Insertion.Translate(dx, dy, dz)
	for i, p := range e.Points {
		e.Points[i] = p.Translate(dx, dy, dz)
	}
}

func removeHandle(members []cad.Handle, h cad.Handle) []cad.Handle {
	out := members[:0]
	for _, m := range members {
		if m != h {
			out = append(out, m)
		}
	}
	return out
}
