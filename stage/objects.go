package stage

import "fmt"

// GoalType is the goal color stored in a goal record's type byte.
type GoalType uint8

const (
	GoalBlue  GoalType = 0x0
	GoalGreen GoalType = 0x1
	GoalRed   GoalType = 0x2
)

func (t GoalType) String() string {
	switch t {
	case GoalBlue:
		return "Blue"
	case GoalGreen:
		return "Green"
	case GoalRed:
		return "Red"
	default:
		return fmt.Sprintf("GoalType(0x%X)", uint8(t))
	}
}

// Goal is a goal object.
type Goal struct {
	Position Vec3
	Rotation RotVec3
	Type     GoalType
}

func (g Goal) String() string {
	return g.Position.String()
}

// Bumper is a bumper object.
type Bumper struct {
	Position Vec3
	Rotation RotVec3
	Scale    Vec3
}

func (b Bumper) String() string {
	return b.Position.String()
}

// Jamabar is a jamabar object.
type Jamabar struct {
	Position Vec3
	Rotation RotVec3
	Scale    Vec3
}

func (j Jamabar) String() string {
	return j.Position.String()
}

// BananaType distinguishes single bananas from bunches.
type BananaType uint32

const (
	BananaSingle BananaType = 0x0
	BananaBunch  BananaType = 0x1
)

func (t BananaType) String() string {
	switch t {
	case BananaSingle:
		return "Single"
	case BananaBunch:
		return "Bunch"
	default:
		return fmt.Sprintf("BananaType(0x%X)", uint32(t))
	}
}

// Banana is a banana object.
type Banana struct {
	Position Vec3
	Type     BananaType
}

func (b Banana) String() string {
	return fmt.Sprintf("%s %s", b.Type, b.Position)
}

// ConeCollision is a conical collision volume.
type ConeCollision struct {
	Position Vec3
	Rotation RotVec3
	Radius1  float32
	Height   float32
	Radius2  float32
}

func (c ConeCollision) String() string {
	return c.Position.String()
}

// SphereCollision is a spherical collision volume.
type SphereCollision struct {
	Position Vec3
	Radius   float32
	Unk0x10  uint32
}

func (s SphereCollision) String() string {
	return s.Position.String()
}

// CylinderCollision is a cylindrical collision volume.
type CylinderCollision struct {
	Position Vec3
	Radius   float32
	Height   float32
	Rotation RotVec3
	Unk0x1A  uint16
}

func (c CylinderCollision) String() string {
	return c.Position.String()
}

// FalloutVolume is a box volume that triggers a fall out.
type FalloutVolume struct {
	Position Vec3
	Size     Vec3
	Rotation RotVec3
	Unk0x1E  uint16
}

func (f FalloutVolume) String() string {
	return f.Position.String()
}

// BackgroundModel is a background model reference. The model name is
// stored elsewhere in the file and reached through an offset.
type BackgroundModel struct {
	Unk0x0    uint32
	ModelName string
	Unk0x8    uint32
	Position  Vec3
	Rotation  RotVec3
	Unk0x1E   uint16
	Scale     Vec3
}

func (b BackgroundModel) String() string {
	return b.ModelName
}
