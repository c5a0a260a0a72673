package stage

// Kind identifies an object kind in the stagedef catalog.
type Kind uint8

const (
	KindGoal Kind = iota
	KindBumper
	KindJamabar
	KindBanana
	KindConeCollision
	KindSphereCollision
	KindCylinderCollision
	KindFalloutVolume
	KindBackgroundModel
	KindCollisionHeader
)

var kindNames = [...]string{
	KindGoal:              "goal",
	KindBumper:            "bumper",
	KindJamabar:           "jamabar",
	KindBanana:            "banana",
	KindConeCollision:     "cone collision",
	KindSphereCollision:   "sphere collision",
	KindCylinderCollision: "cylinder collision",
	KindFalloutVolume:     "fallout volume",
	KindBackgroundModel:   "background model",
	KindCollisionHeader:   "collision header",
}

// On-disk element sizes. Collision headers occur in a contiguous array
// with this value as the stride.
var kindSizes = [...]uint32{
	KindGoal:              0x14,
	KindBumper:            0x20,
	KindJamabar:           0x20,
	KindBanana:            0x10,
	KindConeCollision:     0x20,
	KindSphereCollision:   0x14,
	KindCylinderCollision: 0x1C,
	KindFalloutVolume:     0x20,
	KindBackgroundModel:   0x38,
	KindCollisionHeader:   0x49C,
}

var kindDescriptions = [...]string{
	KindGoal:              "A goal object. The collision for goals is hardcoded.",
	KindBumper:            "A bumper.",
	KindJamabar:           "A jamabar - rectangular prisms that tilt on a fixed axis depending on the stage tilt.",
	KindBanana:            "A banana object. Can also be a banana bunch.",
	KindConeCollision:     "A conical region that the ball can collide with.",
	KindSphereCollision:   "A spherical region that the ball can collide with.",
	KindCylinderCollision: "A cylindrical region that the ball can collide with.",
	KindFalloutVolume:     "A volume that causes a fall out when the ball is within the volume.",
	KindBackgroundModel:   "A background model that does not tilt with the stage.",
	KindCollisionHeader:   "A collision header.",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Size returns the fixed on-disk byte size of one record of this kind.
func (k Kind) Size() uint32 {
	if int(k) < len(kindSizes) {
		return kindSizes[k]
	}
	return 0
}

// Description returns a display description for the kind.
func (k Kind) Description() string {
	if int(k) < len(kindDescriptions) {
		return kindDescriptions[k]
	}
	return "unknown"
}
