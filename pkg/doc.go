// Package pkg provides the core libraries for cadkit drafting automation.
//
// # Overview
//
// Cadkit drives a CAD document through a uniform session API: layers,
// entities, blocks, groups, prompts, and batch drafting operations. The pkg
// directory is organized into five main areas:
//
//  1. [cad] - The session API and the drafting client built on top of it
//  2. [cad/memory] - In-memory CAD host with JSON drawing persistence
//  3. [cadhttp] - HTTP bridge: serve a session, or drive a remote one
//  4. [render] - SVG previews of a drawing
//  5. [tiling] - The linear tiling planner used by batch insertion
//
// # Architecture
//
// The typical data flow through cadkit:
//
//	CLI command / bridge request
//	         ↓
//	    [cad] package (validation + composite operations)
//	         ↓
//	    [cad.Session] implementation ([cad/memory] or [cadhttp] client)
//	         ↓
//	    drawing file / remote host
//
// # Quick Start
//
// Open a drawing and tile a block along a wall:
//
//	import (
//	    "context"
//	    "github.com/cadkit/cadkit/pkg/cad"
//	    "github.com/cadkit/cadkit/pkg/cad/memory"
//	    "github.com/cadkit/cadkit/pkg/geom"
//	)
//
//	doc := memory.NewDocument()
//	client := cad.NewClient(doc)
//
//	ctx := context.Background()
//	_ = client.CreateStandardLayers(ctx, nil)
//	handles, _ := client.RepeatBlockHorizontally(ctx, "desk", 95, 10, geom.P2(0, 0))
//
// # Main Packages
//
// [cad] - Drafting client and session contract. The client validates inputs,
// times every operation through observability hooks, and layers composite
// operations (tiling, alignment, distribution) on the primitive session calls.
//
// [cad/memory] - Reference session implementation: an in-memory document with
// layer, entity, block, and group tables, JSON snapshots for drawing files,
// and pluggable prompters for the modal prompt operations.
//
// [cadhttp] - Both halves of the HTTP bridge. The server mounts any session
// behind a chi router; the client implements the session contract over HTTP
// with retries for transport failures.
//
// [render] - Standalone SVG output for drawing previews.
//
// [tiling] - The spacing planner behind RepeatBlockHorizontally.
//
// [geom] - Points and axes shared by everything above.
//
// [errors] - Coded errors that survive the bridge round trip, plus the
// validation helpers for names, tags, paths, and host URLs.
//
// [cache] - Preview artifact cache keyed by drawing content and render
// options.
//
// [httputil] - Retry helpers for the bridge client.
//
// [observability] - Hook registry for session, cache, and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tiling/...   # Specific package
//	go test -run Example       # Examples only
//
// [cad]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/cad
// [cad/memory]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/cad/memory
// [cadhttp]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/cadhttp
// [render]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/render
// [tiling]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/tiling
// [geom]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/geom
// [errors]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/errors
// [cache]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/observability
// [cad.Session]: https://pkg.go.dev/github.com/cadkit/cadkit/pkg/cad#Session
package pkg
