// Package memory provides a complete in-process implementation of the
// cad.Session surface.
//
// A [Document] owns the same state a CAD host would: a layer table, model
// space entities, block definitions, and named groups. It serializes all
// access behind a single mutex, mirroring the single-threaded apartment of a
// real automation host.
//
// The package serves two roles:
//
//   - an offline host for the CLI, where drawings live as JSON snapshot
//     files on disk ([Document.Open], [Document.SaveAs])
//   - a test double for anything that drives a cad.Session, with scripted
//     prompt responses ([ScriptedPrompter]) in place of modal input
//
// # Usage
//
//	doc := memory.NewDocument(
//	    memory.WithPrompter(memory.NewScriptedPrompter().QueueInt(3)),
//	)
//	doc.DefineBlock(memory.BlockDef{Name: "bolt"})
//
//	client := cad.NewClient(doc)
//	handles, err := client.RepeatBlockHorizontally(ctx, "bolt", 95, 10, geom.P2(0, 0))
package memory
