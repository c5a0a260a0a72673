package stagedef

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/smbworkshop/stagedef/errors"
	"github.com/smbworkshop/stagedef/internal/cursor"
	"github.com/smbworkshop/stagedef/stage"
)

// Decode reads an uncompressed stagedef buffer into a StageDef graph.
//
// The game variant selects the schema tables; the byte order is threaded
// through every primitive read. Structural problems (unsupported
// variant, a buffer too short to hold the file header table) fail the
// whole decode. Everything else degrades per field: absent or unreadable
// sections decode to their zero values, and a corrupt record inside a
// list is skipped with a warning on the package logger rather than
// hiding the rest of the list.
func Decode(data []byte, game Game, order binary.ByteOrder) (*stage.StageDef, error) {
	defaults, err := fileSchemaFor(game)
	if err != nil {
		return nil, err
	}
	colSchema, err := collisionSchemaFor(game)
	if err != nil {
		return nil, err
	}
	if len(data) < fileHeaderExtent {
		return nil, errors.New(errors.PhaseHeader, errors.KindShortRead).
			Detail("buffer length 0x%X is smaller than the file header table (0x%X bytes)", len(data), fileHeaderExtent).
			Build()
	}

	d := &decoder{
		r:    cursor.New(data, order),
		game: game,
		col:  colSchema,
		log:  Logger(),
	}

	sd := &stage.StageDef{}
	hdr := d.resolveFileHeader(defaults)

	d.readSingulars(sd, hdr)
	d.readGlobalLists(sd, hdr)

	// Collision headers come last: their local lists are reconciled
	// against the already-populated global lists.
	d.readCollisionHeaders(sd, hdr)

	return sd, nil
}

type decoder struct {
	r    *cursor.Reader
	game Game
	col  collisionSchema
	log  *zap.Logger
}

// resolveFileHeader performs the second pass of header resolution: seek
// to each fixed field offset from the default table and read the dynamic
// count/offset or pointer value stored there. A field that cannot be
// read resolves to absent.
func (d *decoder) resolveFileHeader(defaults fileSchema) fileSchema {
	var hdr fileSchema

	// The magic numbers live directly at their schema offsets.
	hdr.magicNumber1 = defaults.magicNumber1
	hdr.magicNumber2 = defaults.magicNumber2

	hdr.collisionHeaders = d.resolveCountOffset(defaults.collisionHeaders)
	hdr.startPosition = d.resolveOffset(defaults.startPosition)
	hdr.falloutLevel = d.resolveOffset(defaults.falloutLevel)

	hdr.goals = d.resolveCountOffset(defaults.goals)
	hdr.bumpers = d.resolveCountOffset(defaults.bumpers)
	hdr.jamabars = d.resolveCountOffset(defaults.jamabars)
	hdr.bananas = d.resolveCountOffset(defaults.bananas)
	hdr.coneCollisions = d.resolveCountOffset(defaults.coneCollisions)
	hdr.sphereCollisions = d.resolveCountOffset(defaults.sphereCollisions)
	hdr.cylinderCollisions = d.resolveCountOffset(defaults.cylinderCollisions)
	hdr.falloutVolumes = d.resolveCountOffset(defaults.falloutVolumes)
	hdr.backgroundModels = d.resolveCountOffset(defaults.backgroundModels)

	hdr.foregroundModels = d.resolveCountOffset(defaults.foregroundModels)
	hdr.reflectiveModels = d.resolveCountOffset(defaults.reflectiveModels)
	hdr.modelInstances = d.resolveCountOffset(defaults.modelInstances)
	hdr.modelPointersA = d.resolveCountOffset(defaults.modelPointersA)
	hdr.modelPointersB = d.resolveCountOffset(defaults.modelPointersB)
	hdr.switches = d.resolveCountOffset(defaults.switches)
	hdr.fogAnimation = d.resolveOffset(defaults.fogAnimation)
	hdr.wormholes = d.resolveCountOffset(defaults.wormholes)
	hdr.fog = d.resolveOffset(defaults.fog)
	hdr.mystery3 = d.resolveOffset(defaults.mystery3)

	return hdr
}

func (d *decoder) resolveCountOffset(field cursor.Location) cursor.Location {
	if err := d.r.SeekLocation(field); err != nil {
		return cursor.Location{}
	}
	loc, err := d.r.ReadCountOffset()
	if err != nil {
		return cursor.Location{}
	}
	return loc
}

func (d *decoder) resolveOffset(field cursor.Location) cursor.Location {
	if err := d.r.SeekLocation(field); err != nil {
		return cursor.Location{}
	}
	loc, err := d.r.ReadOffset()
	if err != nil {
		return cursor.Location{}
	}
	return loc
}

// readSingulars reads the fields that live at a resolved single offset
// with no count: magic numbers, start position and rotation, fallout
// level. A field that cannot be read keeps its zero value.
func (d *decoder) readSingulars(sd *stage.StageDef, hdr fileSchema) {
	if d.r.SeekLocation(hdr.magicNumber1) == nil {
		if v, err := d.r.ReadF32(); err == nil {
			sd.MagicNumber1 = v
		}
	}
	if d.r.SeekLocation(hdr.magicNumber2) == nil {
		if v, err := d.r.ReadF32(); err == nil {
			sd.MagicNumber2 = v
		}
	}

	if d.r.SeekLocation(hdr.startPosition) == nil {
		if v, err := d.r.ReadVec3(); err == nil {
			sd.StartPosition = v
		}
		if v, err := d.r.ReadRotVec3(); err == nil {
			sd.StartRotation = v
		}
	}

	if d.r.SeekLocation(hdr.falloutLevel) == nil {
		if v, err := d.r.ReadF32(); err == nil {
			sd.FalloutLevel = v
		}
	}
}

func (d *decoder) readGlobalLists(sd *stage.StageDef, hdr fileSchema) {
	sd.Goals = readList(d, hdr.goals, &sd.Arenas.Goals, stage.KindGoal, readGoal)
	sd.Bumpers = readList(d, hdr.bumpers, &sd.Arenas.Bumpers, stage.KindBumper, readBumper)
	sd.Jamabars = readList(d, hdr.jamabars, &sd.Arenas.Jamabars, stage.KindJamabar, readJamabar)
	sd.Bananas = readList(d, hdr.bananas, &sd.Arenas.Bananas, stage.KindBanana, readBanana)
	sd.ConeCollisions = readList(d, hdr.coneCollisions, &sd.Arenas.ConeCollisions, stage.KindConeCollision, readConeCollision)
	sd.SphereCollisions = readList(d, hdr.sphereCollisions, &sd.Arenas.SphereCollisions, stage.KindSphereCollision, readSphereCollision)
	sd.CylinderCollisions = readList(d, hdr.cylinderCollisions, &sd.Arenas.CylinderCollisions, stage.KindCylinderCollision, readCylinderCollision)
	sd.FalloutVolumes = readList(d, hdr.falloutVolumes, &sd.Arenas.FalloutVolumes, stage.KindFalloutVolume, readFalloutVolume)
	sd.BackgroundModels = readList(d, hdr.backgroundModels, &sd.Arenas.BackgroundModels, stage.KindBackgroundModel, readBackgroundModel)
}

// readList decodes a contiguous homogeneous list described by loc. An
// absent location yields an empty list. Each element is decoded from its
// own computed offset, so a record that fails to decode is skipped
// without corrupting its neighbors; local indices stay contiguous.
func readList[T any](d *decoder, loc cursor.Location, arena *stage.Arena[T], kind stage.Kind, dec func(*cursor.Reader) (T, error)) []stage.Ref[T] {
	if loc.Kind != cursor.LocCounted {
		return nil
	}
	size := kind.Size()
	var refs []stage.Ref[T]
	for i := uint32(0); i < loc.Count; i++ {
		if err := d.r.Seek(loc.Offset + i*size); err != nil {
			d.log.Warn("list element out of range",
				zap.Stringer("kind", kind),
				zap.Uint32("element", i),
				zap.Error(err))
			continue
		}
		v, err := dec(d.r)
		if err != nil {
			d.log.Warn("skipping undecodable record",
				zap.Stringer("kind", kind),
				zap.Uint32("element", i),
				zap.Error(err))
			continue
		}
		ref := arena.Alloc(v)
		ref.Index = uint32(len(refs))
		refs = append(refs, ref)
	}
	return refs
}
