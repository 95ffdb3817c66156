// Package cad defines the host session abstraction and the high-level
// drafting client built on top of it.
//
// # Architecture
//
// The package splits the wrapper into two halves:
//
//   - [Session]: the capability surface of a running CAD host — layers,
//     entities, transforms, blocks, groups, modal prompts. The host owns all
//     drawing state and serializes access to it; a Session value is the
//     explicit stand-in for what a COM automation singleton would be.
//   - [Client]: validation, argument marshalling, and composite operations
//     (standard layer palettes, block tiling, alignment) expressed as
//     forwarding calls into an injected Session.
//
// Implementations of Session live elsewhere: cad/memory provides a complete
// in-process host, and cadhttp provides a client for a remote bridge. Code
// that only plans geometry never needs a Session at all — see pkg/tiling.
//
// # Usage
//
//	doc := memory.NewDocument()
//	client := cad.NewClient(doc)
//
//	if err := client.CreateLayer(ctx, cad.Layer{Name: "Contours", Color: cad.ColorBlue}); err != nil {
//	    return err
//	}
//	start, _ := client.AddLine(ctx, geom.P2(0, 0), geom.P2(100, 0))
//	_ = start
//
// Composite operations reduce to sequences of forwarded calls:
//
//	// Tile a block across a 95-unit span (nine insertions).
//	handles, err := client.RepeatBlockHorizontally(ctx, "brick", 95, 10, geom.P2(0, 0))
package cad
