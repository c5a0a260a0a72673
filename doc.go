// Package stagedef decodes the binary stage definition container format
// used by the Monkey Ball games into a typed, cross-referenced object
// graph.
//
// # Architecture Overview
//
// The module is organized into a few packages with distinct
// responsibilities:
//
//	stagedef/            Decode API, schema tables, section reader,
//	                     collision header aliasing reconciliation
//	├── stage/           Object model: StageDef graph, object kinds,
//	│                    arena-backed shared identity
//	├── errors/          Structured decode errors
//	├── internal/cursor/ Byte cursor with the format's typed reads
//	└── cmd/stagedump/   CLI front-end for inspecting decoded files
//
// # Quick Start
//
// Decode an uncompressed stagedef buffer:
//
//	data, _ := os.ReadFile("stage.lz.raw")
//	sd, err := stagedef.Decode(data, stagedef.GameSMB2, binary.BigEndian)
//	if err != nil {
//	    log.Fatal(err) // nothing was loaded
//	}
//	fmt.Println(len(sd.Goals), "goals")
//
// # Decode Model
//
// A stagedef's file header is a fixed table of offsets; each offset
// points at either a single structure or a count+offset pair describing
// a contiguous list. Decoding resolves the table for the selected game
// variant, reads the singular fields and every global object list, and
// finally walks the collision header array.
//
// Collision headers carry their own per-kind lists. The on-disk format
// has no flag that says whether such a local list is a slice of the
// corresponding global list or a private embedded one; the only
// discriminant is positional containment of the local byte range inside
// the global list's byte extent. The decoder reproduces that test
// exactly, so index-based cross references resolve identically through
// both views. Aliased entries share record identity with the global
// list (see the stage package); embedded entries are freshly decoded.
//
// # Error Model
//
// Structural failures - an unsupported game variant, or a buffer too
// short to hold the file header table - abort the decode with an error
// from the errors package. Anything below that degrades per field:
// absent sections produce empty lists, unreadable singular fields keep
// their zero values, and corrupt list records are skipped individually.
// Skips and failed alias reconciliations are reported through the
// package logger (SetLogger); the default logger is a no-op.
//
// # Scope
//
// The decoder works over a fully in-memory, uncompressed buffer.
// Compressed .lz containers must be decompressed by the caller.
// Encoding back to bytes, collision triangle geometry, and animation
// data are not implemented.
package stagedef
