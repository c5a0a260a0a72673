package stagedef

import (
	"github.com/smbworkshop/stagedef/errors"
	"github.com/smbworkshop/stagedef/internal/cursor"
)

// Game selects which schema tables decode a stagedef buffer.
type Game uint8

const (
	GameSMB1 Game = iota
	GameSMB2
	GameSMBDX
)

func (g Game) String() string {
	switch g {
	case GameSMB1:
		return "SMB1"
	case GameSMB2:
		return "SMB2"
	case GameSMBDX:
		return "SMBDX"
	default:
		return "unknown"
	}
}

// fileSchema maps each top-level field to the location of the 32-bit
// value(s) describing where that field's data lives. The default table
// for a variant holds the fixed absolute offsets of those values; the
// resolved table (second pass) holds the locations actually read from
// the buffer.
//
// Fields are optional, for situations where certain structures are not
// in a particular game.
type fileSchema struct {
	magicNumber1 cursor.Location
	magicNumber2 cursor.Location

	collisionHeaders cursor.Location
	startPosition    cursor.Location
	falloutLevel     cursor.Location

	goals              cursor.Location
	bumpers            cursor.Location
	jamabars           cursor.Location
	bananas            cursor.Location
	coneCollisions     cursor.Location
	sphereCollisions   cursor.Location
	cylinderCollisions cursor.Location
	falloutVolumes     cursor.Location
	backgroundModels   cursor.Location

	// Resolved for forward compatibility; no decoder in the catalog yet.
	foregroundModels cursor.Location
	reflectiveModels cursor.Location
	modelInstances   cursor.Location
	modelPointersA   cursor.Location
	modelPointersB   cursor.Location
	switches         cursor.Location
	fogAnimation     cursor.Location
	wormholes        cursor.Location
	fog              cursor.Location
	mystery3         cursor.Location
}

var smb2FileSchema = fileSchema{
	magicNumber1:       cursor.Single(0x0),
	magicNumber2:       cursor.Single(0x4),
	collisionHeaders:   cursor.Single(0x8),
	startPosition:      cursor.Single(0x10),
	falloutLevel:       cursor.Single(0x14),
	goals:              cursor.Single(0x18),
	bumpers:            cursor.Single(0x20),
	jamabars:           cursor.Single(0x28),
	bananas:            cursor.Single(0x30),
	coneCollisions:     cursor.Single(0x38),
	sphereCollisions:   cursor.Single(0x40),
	cylinderCollisions: cursor.Single(0x48),
	falloutVolumes:     cursor.Single(0x50),
	backgroundModels:   cursor.Single(0x58),
	foregroundModels:   cursor.Single(0x60),
	reflectiveModels:   cursor.Single(0x70),
	modelInstances:     cursor.Single(0x84),
	modelPointersA:     cursor.Single(0x90),
	modelPointersB:     cursor.Single(0x98),
	switches:           cursor.Single(0xA8),
	fogAnimation:       cursor.Single(0xB0),
	wormholes:          cursor.Single(0xB4),
	fog:                cursor.Single(0xBC),
	mystery3:           cursor.Single(0xD4),
}

// fileHeaderExtent is the byte extent of the fixed file-header table. A
// buffer shorter than this cannot resolve the schema at all.
const fileHeaderExtent = 0xD8

// fileSchemaFor returns the default file-header table for a game
// variant. SMBDX shares the SMB2 layout.
func fileSchemaFor(game Game) (fileSchema, error) {
	switch game {
	case GameSMB2, GameSMBDX:
		return smb2FileSchema, nil
	case GameSMB1:
		return fileSchema{}, errors.Unsupported(errors.PhaseSchema, "SMB1 file header format is not implemented")
	default:
		return fileSchema{}, errors.Unsupported(errors.PhaseSchema, "unknown game variant")
	}
}

// collisionSchema maps each collision-header field to its byte delta
// from the header's own start address. Like the file-header table, it
// carries deltas for fields that have no decoder yet.
type collisionSchema struct {
	centerOfRotation uint32
	initialRotation  uint32
	animationType    uint32
	conveyorVector   uint32

	gridStartX     uint32
	gridStartZ     uint32
	gridStepX      uint32
	gridStepZ      uint32
	gridStepCountX uint32
	gridStepCountZ uint32

	goals              uint32
	bumpers            uint32
	jamabars           uint32
	bananas            uint32
	coneCollisions     uint32
	sphereCollisions   uint32
	cylinderCollisions uint32
	falloutVolumes     uint32
	reflectiveModels   uint32
	modelInstances     uint32
	modelPointersB     uint32

	seesawSensitivity  uint32
	seesawFriction     uint32
	seesawSpring       uint32
	wormholes          uint32
	animationLoopPoint uint32
}

var smb2CollisionSchema = collisionSchema{
	centerOfRotation: 0x0,
	initialRotation:  0xC,
	animationType:    0x12,
	conveyorVector:   0x18,

	gridStartX:     0x2C,
	gridStartZ:     0x30,
	gridStepX:      0x34,
	gridStepZ:      0x38,
	gridStepCountX: 0x3C,
	gridStepCountZ: 0x40,

	goals:              0x44,
	bumpers:            0x4C,
	jamabars:           0x54,
	bananas:            0x5C,
	coneCollisions:     0x64,
	sphereCollisions:   0x6C,
	cylinderCollisions: 0x74,
	falloutVolumes:     0x7C,
	reflectiveModels:   0x84,
	modelInstances:     0x8C,
	modelPointersB:     0x94,

	seesawSensitivity:  0xB8,
	seesawFriction:     0xBC,
	seesawSpring:       0xC0,
	wormholes:          0xC4,
	animationLoopPoint: 0xD4,
}

func collisionSchemaFor(game Game) (collisionSchema, error) {
	switch game {
	case GameSMB2, GameSMBDX:
		return smb2CollisionSchema, nil
	case GameSMB1:
		return collisionSchema{}, errors.Unsupported(errors.PhaseSchema, "SMB1 collision header format is not implemented")
	default:
		return collisionSchema{}, errors.Unsupported(errors.PhaseSchema, "unknown game variant")
	}
}
