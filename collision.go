package stagedef

import (
	"go.uber.org/zap"

	"github.com/smbworkshop/stagedef/internal/cursor"
	"github.com/smbworkshop/stagedef/stage"
)

// readCollisionHeaders walks the contiguous collision header array in
// on-disk order. Headers are read after the global lists so that each
// local list can be reconciled against them.
func (d *decoder) readCollisionHeaders(sd *stage.StageDef, hdr fileSchema) {
	loc := hdr.collisionHeaders
	if loc.Kind != cursor.LocCounted {
		return
	}
	stride := stage.KindCollisionHeader.Size()
	for i := uint32(0); i < loc.Count; i++ {
		base := loc.Offset + i*stride
		sd.CollisionHeaders = append(sd.CollisionHeaders, d.readCollisionHeader(sd, hdr, base))
	}
}

// readCollisionHeader reads one collision header whose start address is
// base. Every relative field in the collision schema resolves to
// base+delta. Field-level misses leave zero values, like everywhere
// else.
func (d *decoder) readCollisionHeader(sd *stage.StageDef, hdr fileSchema, base uint32) stage.CollisionHeader {
	cs := d.col
	var h stage.CollisionHeader

	if d.r.Seek(base+cs.centerOfRotation) == nil {
		if v, err := d.r.ReadVec3(); err == nil {
			h.CenterOfRotation = v
		}
	}
	if d.r.Seek(base+cs.initialRotation) == nil {
		if v, err := d.r.ReadRotVec3(); err == nil {
			h.InitialRotation = v
		}
	}
	if d.r.Seek(base+cs.conveyorVector) == nil {
		if v, err := d.r.ReadVec3(); err == nil {
			h.ConveyorVector = v
		}
	}

	// Grid parameters are four floats followed by two counts, laid out
	// contiguously in every known variant.
	if d.r.Seek(base+cs.gridStartX) == nil {
		h.GridStartX, _ = d.r.ReadF32()
		h.GridStartZ, _ = d.r.ReadF32()
		h.GridStepX, _ = d.r.ReadF32()
		h.GridStepZ, _ = d.r.ReadF32()
		h.GridStepCountX, _ = d.r.ReadU32()
		h.GridStepCountZ, _ = d.r.ReadU32()
	}

	if d.r.Seek(base+cs.seesawSensitivity) == nil {
		h.SeesawSensitivity, _ = d.r.ReadF32()
		h.SeesawFriction, _ = d.r.ReadF32()
		h.SeesawSpring, _ = d.r.ReadF32()
	}
	if d.r.Seek(base+cs.animationLoopPoint) == nil {
		h.AnimationLoopPoint, _ = d.r.ReadF32()
	}

	h.Goals = readLocalList(d, base+cs.goals, hdr.goals, sd.Goals, &sd.Arenas.Goals, stage.KindGoal, readGoal)
	h.Bumpers = readLocalList(d, base+cs.bumpers, hdr.bumpers, sd.Bumpers, &sd.Arenas.Bumpers, stage.KindBumper, readBumper)
	h.Jamabars = readLocalList(d, base+cs.jamabars, hdr.jamabars, sd.Jamabars, &sd.Arenas.Jamabars, stage.KindJamabar, readJamabar)
	h.Bananas = readLocalList(d, base+cs.bananas, hdr.bananas, sd.Bananas, &sd.Arenas.Bananas, stage.KindBanana, readBanana)
	h.ConeCollisions = readLocalList(d, base+cs.coneCollisions, hdr.coneCollisions, sd.ConeCollisions, &sd.Arenas.ConeCollisions, stage.KindConeCollision, readConeCollision)
	h.SphereCollisions = readLocalList(d, base+cs.sphereCollisions, hdr.sphereCollisions, sd.SphereCollisions, &sd.Arenas.SphereCollisions, stage.KindSphereCollision, readSphereCollision)
	h.CylinderCollisions = readLocalList(d, base+cs.cylinderCollisions, hdr.cylinderCollisions, sd.CylinderCollisions, &sd.Arenas.CylinderCollisions, stage.KindCylinderCollision, readCylinderCollision)
	h.FalloutVolumes = readLocalList(d, base+cs.falloutVolumes, hdr.falloutVolumes, sd.FalloutVolumes, &sd.Arenas.FalloutVolumes, stage.KindFalloutVolume, readFalloutVolume)

	// The format has no per-header background model list; each header
	// re-reads the global location as private records.
	h.BackgroundModels = readList(d, hdr.backgroundModels, &sd.Arenas.BackgroundModels, stage.KindBackgroundModel, readBackgroundModel)

	return h
}

// readLocalList reads a collision header's local count+offset pair at
// fieldOff and produces the header's view of that object kind: either an
// aliased slice of the global list or an independently embedded list.
func readLocalList[T any](d *decoder, fieldOff uint32, globalLoc cursor.Location, global []stage.Ref[T], arena *stage.Arena[T], kind stage.Kind, dec func(*cursor.Reader) (T, error)) []stage.Ref[T] {
	if err := d.r.Seek(fieldOff); err != nil {
		return nil
	}
	loc, err := d.r.ReadCountOffset()
	if err != nil || loc.IsAbsent() {
		return nil
	}

	if refs, ok := aliasGlobal(d, loc, globalLoc, global, kind); ok {
		return refs
	}
	// The local range does not land in the global list: a per-header
	// private list, decoded fresh.
	return readList(d, loc, arena, kind, dec)
}

// aliasGlobal applies the positional containment test that is the
// format's de-facto tag for shared lists. When the local list's start
// falls inside the byte extent of the global list, the local list is a
// re-exposed slice: select loc.Count entries in global-index order
// starting at diff/size and re-number their local indices from 0. The
// shared records themselves are untouched.
func aliasGlobal[T any](d *decoder, loc, globalLoc cursor.Location, global []stage.Ref[T], kind stage.Kind) ([]stage.Ref[T], bool) {
	if globalLoc.Kind != cursor.LocCounted {
		d.log.Warn("local list has no global list to alias",
			zap.Stringer("kind", kind),
			zap.Uint32("offset", loc.Offset))
		return nil, false
	}

	size := int64(kind.Size())
	diff := int64(loc.Offset) - int64(globalLoc.Offset)
	if diff < 0 {
		d.log.Warn("local list starts before the global list",
			zap.Stringer("kind", kind),
			zap.Int64("diff", diff))
		return nil, false
	}
	extent := int64(globalLoc.Count) * size
	if diff >= extent {
		d.log.Warn("local list outside the global list extent",
			zap.Stringer("kind", kind),
			zap.Int64("diff", diff),
			zap.Int64("extent", extent))
		return nil, false
	}
	if diff%size != 0 {
		// Malformed but loadable; keep the truncating start index the
		// format has always been decoded with.
		d.log.Warn("local list offset does not fall on an element boundary",
			zap.Stringer("kind", kind),
			zap.Int64("diff", diff),
			zap.Int64("elementSize", size))
	}

	start := int(diff / size)
	refs := make([]stage.Ref[T], 0, loc.Count)
	for n := 0; n < int(loc.Count) && start+n < len(global); n++ {
		ref := global[start+n]
		ref.Index = uint32(n)
		refs = append(refs, ref)
	}
	return refs, true
}
