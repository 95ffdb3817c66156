// Package tiling computes placement points for repeating a fixed-size item
// along one axis within a bounded span.
//
// Given a total span, an item length, and a starting anchor, [Plan] produces
// the ordered sequence of insertion points at which copies of the item fit
// without exceeding the span. The planner is a pure function: it performs no
// I/O, holds no state, and never talks to a host session itself. Callers take
// the produced points and ask the session to instantiate an item at each one.
//
// # Usage
//
//	points, err := tiling.Plan(tiling.Request{
//	    TotalLength: 95,
//	    ItemLength:  10,
//	    Start:       geom.P2(0, 0),
//	})
//	// points: (0,0,0) (10,0,0) ... (80,0,0) — nine items, remainder discarded
package tiling

import (
	"math"

	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

// Request describes one tiling computation.
type Request struct {
	// TotalLength is the available span to fill. Must be non-negative.
	TotalLength float64

	// ItemLength is the footprint of one item along the tiling axis.
	// Must be strictly positive.
	ItemLength float64

	// Start is the anchor for the first item's insertion reference.
	Start geom.Point

	// Axis is the tiling direction. The zero value is [geom.AxisX].
	Axis geom.Axis
}

// Count returns the number of whole items that fit in the span, without
// validating the request. floor(TotalLength / ItemLength).
func (r Request) Count() int {
	return int(math.Floor(r.TotalLength / r.ItemLength))
}

// Plan computes the ordered insertion points for the request.
//
// It returns exactly floor(TotalLength/ItemLength) points, spaced ItemLength
// apart along the axis starting at Start. Index order is placement order.
// A span smaller than one item yields an empty, non-nil slice — not an error.
//
// Plan fails with an INVALID_ARGUMENT error when ItemLength is not strictly
// positive or TotalLength is negative; no points are produced in that case.
func Plan(req Request) ([]geom.Point, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	points := make([]geom.Point, req.Count())
	for i := range points {
		points[i] = req.Start.Offset(req.Axis, float64(i)*req.ItemLength)
	}
	return points, nil
}

// PlanLinear is shorthand for a [Plan] along the X axis, matching the common
// case of tiling a block horizontally from an anchor point.
func PlanLinear(totalLength, itemLength float64, start geom.Point) ([]geom.Point, error) {
	return Plan(Request{TotalLength: totalLength, ItemLength: itemLength, Start: start})
}

func validate(req Request) error {
	if math.IsNaN(req.ItemLength) || req.ItemLength <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"item length must be positive, got %v", req.ItemLength)
	}
	if math.IsNaN(req.TotalLength) || req.TotalLength < 0 {
		return errors.New(errors.ErrCodeInvalidArgument,
			"total length must be non-negative, got %v", req.TotalLength)
	}
	if math.IsInf(req.TotalLength, 0) || math.IsInf(req.ItemLength, 0) {
		return errors.New(errors.ErrCodeInvalidArgument, "lengths must be finite")
	}
	if !req.Axis.Valid() {
		return errors.New(errors.ErrCodeInvalidArgument, "unknown tiling axis %v", req.Axis)
	}
	return nil
}
