package stage

import "testing"

func TestKindSizes(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		size uint32
	}{
		{KindGoal, 0x14},
		{KindBumper, 0x20},
		{KindJamabar, 0x20},
		{KindBanana, 0x10},
		{KindConeCollision, 0x20},
		{KindSphereCollision, 0x14},
		{KindCylinderCollision, 0x1C},
		{KindFalloutVolume, 0x20},
		{KindBackgroundModel, 0x38},
		{KindCollisionHeader, 0x49C},
	} {
		if got := tc.kind.Size(); got != tc.size {
			t.Errorf("%s size = 0x%X, want 0x%X", tc.kind, got, tc.size)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KindSphereCollision.String(); got != "sphere collision" {
		t.Errorf("got %q", got)
	}
	if got := Kind(0xFF).String(); got != "unknown" {
		t.Errorf("out-of-range kind = %q, want unknown", got)
	}
	if Kind(0xFF).Size() != 0 {
		t.Error("out-of-range kind must have size 0")
	}
}
