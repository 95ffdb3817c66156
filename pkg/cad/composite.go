package cad

import (
	"context"
	"math"
	"sort"

	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
	"github.com/cadkit/cadkit/pkg/tiling"
)

// StandardLayers is the default mechanical drafting palette created by
// [Client.CreateStandardLayers].
var StandardLayers = []Layer{
	NewLayer("Centerlines", ColorRed),
	NewLayer("Dimensions", ColorGreen),
	NewLayer("Contours", ColorBlue),
	NewLayer("Axes", ColorCyan),
	NewLayer("Text", ColorMagenta),
	NewLayer("Symbols", ColorYellow),
	NewLayer("Hatching", ColorOrange),
	NewLayer("Construction", ColorPurple),
}

// CreateStandardLayers creates the standard drafting palette. A nil layers
// slice creates [StandardLayers]. Layers that already exist are left
// untouched; the first hard failure aborts the remainder.
func (c *Client) CreateStandardLayers(ctx context.Context, layers []Layer) error {
	if layers == nil {
		layers = StandardLayers
	}
	for _, layer := range layers {
		err := c.CreateLayer(ctx, layer)
		if err != nil && !errors.Is(err, errors.ErrCodeDuplicate) {
			return err
		}
	}
	return nil
}

// RepeatBlockHorizontally tiles a block along the X axis: it plans
// floor(totalLength/blockLength) insertion points starting at start, then
// inserts one reference per point, in plan order. Returns the handles of the
// inserted references.
//
// The span remainder is discarded; a span shorter than one block inserts
// nothing and is not an error. Invalid lengths fail with INVALID_ARGUMENT
// before anything is inserted.
func (c *Client) RepeatBlockHorizontally(ctx context.Context, name string, totalLength, blockLength float64, start geom.Point) ([]Handle, error) {
	if err := errors.ValidateSymbolName(name); err != nil {
		return nil, err
	}

	points, err := tiling.PlanLinear(totalLength, blockLength, start)
	if err != nil {
		return nil, err
	}

	handles := make([]Handle, 0, len(points))
	for _, p := range points {
		h, err := c.InsertBlock(ctx, BlockReference{Name: name, Insertion: p})
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// AlignObjects moves every object so its insertion X lands on the leftmost
// (AlignLeft) or rightmost (AlignRight) insertion X among them. Y and Z are
// preserved. An empty handle list is a no-op.
func (c *Client) AlignObjects(ctx context.Context, handles []Handle, alignment Alignment) error {
	if alignment != AlignLeft && alignment != AlignRight {
		return errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q", alignment)
	}
	if len(handles) == 0 {
		return nil
	}

	objects, err := c.lookup(ctx, handles)
	if err != nil {
		return err
	}

	edge := objects[0].Insertion.X
	for _, o := range objects[1:] {
		if alignment == AlignLeft {
			edge = math.Min(edge, o.Insertion.X)
		} else {
			edge = math.Max(edge, o.Insertion.X)
		}
	}

	for _, o := range objects {
		target := geom.Point{X: edge, Y: o.Insertion.Y, Z: o.Insertion.Z}
		if err := c.Move(ctx, o.Handle, target); err != nil {
			return err
		}
	}
	return nil
}

// DistributeObjects spaces objects a fixed distance apart along the X axis.
// Objects are ordered by their current insertion X; the leftmost stays put
// and each subsequent object is placed spacing units right of its
// predecessor.
func (c *Client) DistributeObjects(ctx context.Context, handles []Handle, spacing float64) error {
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return errors.New(errors.ErrCodeInvalidArgument, "spacing must be positive, got %v", spacing)
	}
	if len(handles) < 2 {
		return nil
	}

	objects, err := c.lookup(ctx, handles)
	if err != nil {
		return err
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Insertion.X < objects[j].Insertion.X
	})

	x := objects[0].Insertion.X
	for _, o := range objects[1:] {
		x += spacing
		target := geom.Point{X: x, Y: o.Insertion.Y, Z: o.Insertion.Z}
		if err := c.Move(ctx, o.Handle, target); err != nil {
			return err
		}
	}
	return nil
}

// BlockCoordinates returns the insertion points of every reference of the
// named block, in model-space order.
func (c *Client) BlockCoordinates(ctx context.Context, name string) ([]geom.Point, error) {
	if err := errors.ValidateSymbolName(name); err != nil {
		return nil, err
	}

	objects, err := c.Objects(ctx, ObjectFilter{Type: EntityBlockReference, Block: name})
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point, len(objects))
	for i, o := range objects {
		points[i] = o.Insertion
	}
	return points, nil
}

// lookup resolves handles to objects via one model-space query.
func (c *Client) lookup(ctx context.Context, handles []Handle) ([]Object, error) {
	all, err := c.Objects(ctx, ObjectFilter{})
	if err != nil {
		return nil, err
	}

	byHandle := make(map[Handle]Object, len(all))
	for _, o := range all {
		byHandle[o.Handle] = o
	}

	objects := make([]Object, 0, len(handles))
	for _, h := range handles {
		o, ok := byHandle[h]
		if !ok {
			return nil, errors.New(errors.ErrCodeEntityNotFound, "no object with handle %q", h)
		}
		objects = append(objects, o)
	}
	return objects, nil
}
