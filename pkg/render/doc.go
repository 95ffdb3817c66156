// Package render turns drawing snapshots into preview images.
//
// # Overview
//
// The renderer consumes a [memory.View], the full-geometry copy of an
// in-memory document, and emits a standalone SVG. It is meant for quick
// visual checks from the CLI, not for print-quality plots: entities are
// drawn in their layer colors on a dark model-space background, hidden
// layers are skipped, and block references are shown as labeled footprints.
//
// # Usage
//
//	doc := memory.NewDocument()
//	// ... draft ...
//	svg := render.SVG(doc.View(), render.WithSize(1200, 800))
//	os.WriteFile("preview.svg", svg, 0o644)
//
// [memory.View]: github.com/cadkit/cadkit/pkg/cad/memory
package render
