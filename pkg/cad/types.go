package cad

import (
	"github.com/cadkit/cadkit/pkg/geom"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// EntityType identifies the kind of a model-space object.
type EntityType string

// Entity types known to the wrapper. Hosts may own more; the wrapper only
// creates and filters on these.
const (
	EntityLine           EntityType = "line"
	EntityCircle         EntityType = "circle"
	EntityEllipse        EntityType = "ellipse"
	EntityPolyline       EntityType = "polyline"
	EntityText           EntityType = "text"
	EntityDimension      EntityType = "dimension"
	EntityBlockReference EntityType = "block-reference"
)

// Alignment selects the edge objects are aligned against.
type Alignment string

// Supported alignments for [Client.AlignObjects].
const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// DimensionKind selects the dimension style. Only aligned dimensions are
// supported, matching the host surface the wrapper drives.
type DimensionKind string

// DimensionAligned measures the true distance between two points.
const DimensionAligned DimensionKind = "aligned"

// DefaultLinetype is the linetype new layers start with.
const DefaultLinetype = "Continuous"

// =============================================================================
// Value Types
// =============================================================================

// Handle is an opaque identifier for an entity owned by the host. Handles
// are only meaningful to the session that issued them.
type Handle string

// Layer describes a drawing layer.
type Layer struct {
	Name     string `json:"name"`
	Color    Color  `json:"color"`
	Visible  bool   `json:"visible"`
	Locked   bool   `json:"locked,omitempty"`
	Linetype string `json:"linetype,omitempty"`
}

// NewLayer returns a visible, unlocked layer with the given name and color
// and the default linetype.
func NewLayer(name string, color Color) Layer {
	return Layer{Name: name, Color: color, Visible: true, Linetype: DefaultLinetype}
}

// BlockReference describes one insertion of a named block.
type BlockReference struct {
	Name      string     `json:"name"`
	Insertion geom.Point `json:"insertion"`
	Scale     float64    `json:"scale,omitempty"`    // uniform; 0 means 1.0
	Rotation  float64    `json:"rotation,omitempty"` // radians
}

// EffectiveScale returns the uniform scale factor, defaulting to 1.0.
func (b BlockReference) EffectiveScale() float64 {
	if b.Scale == 0 {
		return 1.0
	}
	return b.Scale
}

// Text describes a single-line text entity.
type Text struct {
	Content   string     `json:"content"`
	Insertion geom.Point `json:"insertion"`
	Height    float64    `json:"height"`
	Alignment Alignment  `json:"alignment,omitempty"` // defaults to AlignLeft
}

// Dimension describes an aligned dimension between two measured points, with
// the dimension text placed at TextPosition.
type Dimension struct {
	Start        geom.Point    `json:"start"`
	End          geom.Point    `json:"end"`
	TextPosition geom.Point    `json:"text_position"`
	Kind         DimensionKind `json:"kind,omitempty"` // defaults to DimensionAligned
}

// Attribute is one tag/value pair attached to a block reference.
type Attribute struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Object is the wrapper's view of one host entity: the handle plus the
// properties the wrapper queries and transforms. The host remains the source
// of truth for everything else.
type Object struct {
	Handle    Handle     `json:"handle"`
	Type      EntityType `json:"type"`
	Layer     string     `json:"layer"`
	Insertion geom.Point `json:"insertion"`
	Block     string     `json:"block,omitempty"` // set for block references
}

// ObjectFilter narrows a model-space query. Zero-valued fields match
// everything.
type ObjectFilter struct {
	Type  EntityType `json:"type,omitempty"`
	Layer string     `json:"layer,omitempty"`
	Block string     `json:"block,omitempty"`
}

// Matches reports whether the object passes the filter.
func (f ObjectFilter) Matches(o Object) bool {
	if f.Type != "" && o.Type != f.Type {
		return false
	}
	if f.Layer != "" && o.Layer != f.Layer {
		return false
	}
	if f.Block != "" && o.Block != f.Block {
		return false
	}
	return true
}
