// Package stage defines the object model for decoded stage definition
// files: the StageDef root graph, the per-kind record types, and the
// arena-backed shared identity model.
//
// # Shared identity
//
// A record can be owned by the global list and aliased by any number of
// collision headers at the same time. Records therefore live in arenas
// (one per kind, held by the StageDef) and every list holds Ref handles
// into them:
//
//	goal := sd.Goals[0].Value()          // *Goal into the arena
//	goal.Type = stage.GoalRed            // visible through every alias
//	sd.CollisionHeaders[0].Goals[0].Same(sd.Goals[0]) // true when aliased
//
// A Ref's Index is local to the list that owns the view: global lists
// number 0..N in on-disk order, and a collision header that aliases a
// sub-range re-numbers its view from 0 without touching global identity.
//
// # Object kinds
//
// Kind enumerates the catalog and carries the per-kind display name,
// description, and fixed on-disk size used by the decoder's list and
// aliasing arithmetic.
package stage
