package stage

import "fmt"

// Vec3 is a 32-bit floating point 3 dimensional vector.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

// RotVec3 is a 16-bit quantized 3 dimensional vector. Stagedefs use it to
// represent rotations: the full u16 range maps onto 360 degrees.
type RotVec3 struct {
	X uint16
	Y uint16
	Z uint16
}

// Degrees converts the quantized components to degrees.
func (v RotVec3) Degrees() Vec3 {
	return Vec3{
		X: (float32(v.X) / 65535.0) * 360.0,
		Y: (float32(v.Y) / 65535.0) * 360.0,
		Z: (float32(v.Z) / 65535.0) * 360.0,
	}
}

func (v RotVec3) String() string {
	deg := v.Degrees()
	return fmt.Sprintf("(%.1f°, %.1f°, %.1f°)", deg.X, deg.Y, deg.Z)
}

// StageDef is the root of a decoded stage definition file.
//
// The per-kind slices are the global lists: insertion order is on-disk
// order, and each Ref's Index is its authoritative global index. Records
// live in the Arenas field; every Ref, global or per-collision-header,
// points into those arenas, so mutating a record through one handle is
// visible through all handles that share it.
type StageDef struct {
	MagicNumber1 float32
	MagicNumber2 float32

	StartPosition Vec3
	StartRotation RotVec3

	FalloutLevel float32

	Goals              []Ref[Goal]
	Bumpers            []Ref[Bumper]
	Jamabars           []Ref[Jamabar]
	Bananas            []Ref[Banana]
	ConeCollisions     []Ref[ConeCollision]
	SphereCollisions   []Ref[SphereCollision]
	CylinderCollisions []Ref[CylinderCollision]
	FalloutVolumes     []Ref[FalloutVolume]
	BackgroundModels   []Ref[BackgroundModel]

	CollisionHeaders []CollisionHeader

	// Arenas is the backing storage for every decoded record. Consumers
	// normally go through the Ref lists; the arenas exist so that global
	// lists and collision headers can share record identity.
	Arenas Arenas
}

// Arenas holds one arena per object kind.
type Arenas struct {
	Goals              Arena[Goal]
	Bumpers            Arena[Bumper]
	Jamabars           Arena[Jamabar]
	Bananas            Arena[Banana]
	ConeCollisions     Arena[ConeCollision]
	SphereCollisions   Arena[SphereCollision]
	CylinderCollisions Arena[CylinderCollision]
	FalloutVolumes     Arena[FalloutVolume]
	BackgroundModels   Arena[BackgroundModel]
}

// CollisionHeader is a per-region sub-structure of a stage. Its object
// lists are either shared views into the global lists (re-numbered from
// local index 0) or independently decoded records; both look the same to
// a consumer, only Ref identity differs.
type CollisionHeader struct {
	CenterOfRotation Vec3
	InitialRotation  RotVec3
	ConveyorVector   Vec3

	// Collision grid parameters. Triangle data itself is not decoded.
	GridStartX     float32
	GridStartZ     float32
	GridStepX      float32
	GridStepZ      float32
	GridStepCountX uint32
	GridStepCountZ uint32

	SeesawSensitivity float32
	SeesawFriction    float32
	SeesawSpring      float32

	AnimationLoopPoint float32

	Goals              []Ref[Goal]
	Bumpers            []Ref[Bumper]
	Jamabars           []Ref[Jamabar]
	Bananas            []Ref[Banana]
	ConeCollisions     []Ref[ConeCollision]
	SphereCollisions   []Ref[SphereCollision]
	CylinderCollisions []Ref[CylinderCollision]
	FalloutVolumes     []Ref[FalloutVolume]
	BackgroundModels   []Ref[BackgroundModel]
}
