package stagedef

import (
	"encoding/binary"
	"testing"

	"github.com/smbworkshop/stagedef/stage"
)

const aliasGoalList = 0x700

// buildAliasFixture builds a stagedef with three goals in the global
// list (z = -1, -2, -3) and a single collision header whose local goal
// list is the given count/offset pair.
func buildAliasFixture(localCount, localOffset uint32) []byte {
	f := newFixture(binary.BigEndian)

	f.f32(0x4, 1000.0)
	f.u32(0x8, 1)
	f.u32(0xC, fixCollisionHeaderBase)
	f.u32(0x10, fixStartPos)
	f.u32(0x14, fixFalloutLevel)

	f.u32(0x18, 3)
	f.u32(0x1C, aliasGoalList)
	for i := uint32(0); i < 3; i++ {
		f.f32(aliasGoalList+i*0x14+8, -float32(i+1))
	}

	f.u32(fixCollisionHeaderBase+0x44, localCount)
	f.u32(fixCollisionHeaderBase+0x48, localOffset)

	return f.buf
}

func decodeAliasFixture(t *testing.T, localCount, localOffset uint32) *stage.StageDef {
	t.Helper()
	sd, err := Decode(buildAliasFixture(localCount, localOffset), GameSMB2, binary.BigEndian)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(sd.Goals) != 3 {
		t.Fatalf("got %d global goals, want 3", len(sd.Goals))
	}
	if len(sd.CollisionHeaders) != 1 {
		t.Fatalf("got %d collision headers, want 1", len(sd.CollisionHeaders))
	}
	return sd
}

func TestCollisionHeaderAliasesGlobalLists(t *testing.T) {
	sd, err := Decode(buildStageFixture(binary.BigEndian), GameSMB2, binary.BigEndian)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 1 {
		t.Fatalf("got %d header goals, want 1", len(h.Goals))
	}
	if !h.Goals[0].Same(sd.Goals[0]) {
		t.Error("header goal does not share the global goal record")
	}

	if len(h.Bananas) != 7 {
		t.Fatalf("got %d header bananas, want 7", len(h.Bananas))
	}
	for i := range h.Bananas {
		if !h.Bananas[i].Same(sd.Bananas[i]) {
			t.Errorf("header banana %d does not share global banana %d", i, i)
		}
		if h.Bananas[i].Index != uint32(i) {
			t.Errorf("header banana %d local index = %d", i, h.Bananas[i].Index)
		}
	}

	if got := sd.Arenas.Bananas.Len(); got != 7 {
		t.Errorf("banana arena has %d records, want 7 (aliasing must not reallocate)", got)
	}
}

func TestAliasStartsMidList(t *testing.T) {
	sd := decodeAliasFixture(t, 2, aliasGoalList+0x14)
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 2 {
		t.Fatalf("got %d header goals, want 2", len(h.Goals))
	}
	for i, want := range []int{1, 2} {
		if !h.Goals[i].Same(sd.Goals[want]) {
			t.Errorf("header goal %d does not share global goal %d", i, want)
		}
		if h.Goals[i].Index != uint32(i) {
			t.Errorf("header goal %d local index = %d, want %d", i, h.Goals[i].Index, i)
		}
		if h.Goals[i].Value().Position.Z != -float32(want+1) {
			t.Errorf("header goal %d z = %g", i, h.Goals[i].Value().Position.Z)
		}
	}
	// The global refs keep their own indices.
	if sd.Goals[1].Index != 1 || sd.Goals[2].Index != 2 {
		t.Error("aliasing changed global list indices")
	}
}

func TestAliasCountClampedToGlobal(t *testing.T) {
	// Five requested from a three-element list starting at index 1:
	// only the two remaining records exist.
	sd := decodeAliasFixture(t, 5, aliasGoalList+0x14)
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 2 {
		t.Fatalf("got %d header goals, want 2", len(h.Goals))
	}
	if !h.Goals[1].Same(sd.Goals[2]) {
		t.Error("clamped alias does not end at the last global record")
	}
}

func TestAliasNonDivisibleOffsetTruncates(t *testing.T) {
	// Offset 7 bytes into the first record still aliases, with the
	// start index truncated to 0.
	sd := decodeAliasFixture(t, 1, aliasGoalList+7)
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 1 {
		t.Fatalf("got %d header goals, want 1", len(h.Goals))
	}
	if !h.Goals[0].Same(sd.Goals[0]) {
		t.Error("non-divisible offset inside the extent must still alias")
	}
}

func TestEmbeddedListBeforeGlobal(t *testing.T) {
	sd := decodeAliasFixture(t, 1, 0x600)
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 1 {
		t.Fatalf("got %d header goals, want 1", len(h.Goals))
	}
	for i := range sd.Goals {
		if h.Goals[0].Same(sd.Goals[i]) {
			t.Fatalf("embedded goal shares global goal %d", i)
		}
	}
	if got := sd.Arenas.Goals.Len(); got != 4 {
		t.Errorf("goal arena has %d records, want 4 (3 global + 1 embedded)", got)
	}
}

func TestEmbeddedListPastGlobalExtent(t *testing.T) {
	sd := decodeAliasFixture(t, 1, aliasGoalList+3*0x14)
	h := sd.CollisionHeaders[0]

	if len(h.Goals) != 1 {
		t.Fatalf("got %d header goals, want 1", len(h.Goals))
	}
	if h.Goals[0].Same(sd.Goals[2]) {
		t.Error("list starting one past the global extent must be embedded, not aliased")
	}
}

func TestEmbeddedListWhenGlobalAbsent(t *testing.T) {
	sd, err := Decode(buildStageFixture(binary.BigEndian), GameSMB2, binary.BigEndian)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	h := sd.CollisionHeaders[0]

	if len(sd.SphereCollisions) != 0 {
		t.Fatalf("got %d global sphere collisions, want 0", len(sd.SphereCollisions))
	}
	if len(h.SphereCollisions) != 4 {
		t.Fatalf("got %d header sphere collisions, want 4", len(h.SphereCollisions))
	}
	for i := range h.SphereCollisions {
		if h.SphereCollisions[i].Index != uint32(i) {
			t.Errorf("sphere %d index = %d", i, h.SphereCollisions[i].Index)
		}
		for j := i + 1; j < len(h.SphereCollisions); j++ {
			if h.SphereCollisions[i].Same(h.SphereCollisions[j]) {
				t.Errorf("embedded spheres %d and %d share a record", i, j)
			}
		}
	}
}

func TestSharedMutationIsVisibleThroughAllRefs(t *testing.T) {
	sd, err := Decode(buildStageFixture(binary.BigEndian), GameSMB2, binary.BigEndian)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	h := sd.CollisionHeaders[0]

	h.Bananas[2].Value().Type = stage.BananaBunch
	if sd.Bananas[2].Value().Type != stage.BananaBunch {
		t.Error("mutation through the header ref is not visible through the global ref")
	}

	sd.Goals[0].Value().Type = stage.GoalRed
	if h.Goals[0].Value().Type != stage.GoalRed {
		t.Error("mutation through the global ref is not visible through the header ref")
	}
}
