package cursor

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/smbworkshop/stagedef/stage"
)

func TestCountedNormalizesToAbsent(t *testing.T) {
	for _, tc := range []struct {
		name          string
		count, offset uint32
		wantAbsent    bool
	}{
		{"ZeroCount", 0, 0x100, true},
		{"ZeroOffset", 5, 0, true},
		{"BothZero", 0, 0, true},
		{"Present", 5, 0x100, false},
	} {
		loc := Counted(tc.count, tc.offset)
		if loc.IsAbsent() != tc.wantAbsent {
			t.Errorf("%s: Counted(%d, 0x%X).IsAbsent() = %v, want %v",
				tc.name, tc.count, tc.offset, loc.IsAbsent(), tc.wantAbsent)
		}
	}
}

func TestReadCountOffset(t *testing.T) {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint32(buf[0:], 3)
	binary.BigEndian.PutUint32(buf[4:], 0x8B4)

	r := New(buf, binary.BigEndian)
	loc, err := r.ReadCountOffset()
	if err != nil {
		t.Fatalf("ReadCountOffset failed: %v", err)
	}
	if loc.Kind != LocCounted || loc.Count != 3 || loc.Offset != 0x8B4 {
		t.Errorf("got %+v, want counted (3, 0x8B4)", loc)
	}

	// Zero pair at the tail normalizes to absent.
	loc, err = r.ReadCountOffset()
	if err != nil {
		t.Fatalf("ReadCountOffset failed: %v", err)
	}
	if !loc.IsAbsent() {
		t.Errorf("zero count/offset pair decoded as %+v, want absent", loc)
	}
}

func TestReadVec3BothOrders(t *testing.T) {
	want := stage.Vec3{X: 0.0, Y: 2.75, Z: 14.0}
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		buf := make([]byte, 12)
		order.PutUint32(buf[0:], math.Float32bits(want.X))
		order.PutUint32(buf[4:], math.Float32bits(want.Y))
		order.PutUint32(buf[8:], math.Float32bits(want.Z))

		r := New(buf, order)
		got, err := r.ReadVec3()
		if err != nil {
			t.Fatalf("%v: ReadVec3 failed: %v", order, err)
		}
		if got != want {
			t.Errorf("%v: got %v, want %v", order, got, want)
		}
	}
}

func TestReadRotVec3(t *testing.T) {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:], 0)
	binary.BigEndian.PutUint16(buf[2:], 16384)
	binary.BigEndian.PutUint16(buf[4:], 65535)

	r := New(buf, binary.BigEndian)
	v, err := r.ReadRotVec3()
	if err != nil {
		t.Fatalf("ReadRotVec3 failed: %v", err)
	}
	if v != (stage.RotVec3{X: 0, Y: 16384, Z: 65535}) {
		t.Fatalf("got %+v", v)
	}

	deg := v.Degrees()
	if deg.X != 0 {
		t.Errorf("0 quantized = %g degrees, want 0", deg.X)
	}
	if math.Abs(float64(deg.Y)-90.0) > 0.01 {
		t.Errorf("16384 quantized = %g degrees, want ~90", deg.Y)
	}
	if deg.Z != 360.0 {
		t.Errorf("65535 quantized = %g degrees, want 360", deg.Z)
	}
}

func TestReadIndirectNameRestoresPosition(t *testing.T) {
	buf := make([]byte, 0x20)
	binary.BigEndian.PutUint32(buf[4:], 0x10)
	copy(buf[0x10:], "STAGE\x00")

	r := New(buf, binary.BigEndian)
	if err := r.Seek(4); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	name, err := r.ReadIndirectName()
	if err != nil {
		t.Fatalf("ReadIndirectName failed: %v", err)
	}
	if name != "STAGE" {
		t.Errorf("got %q, want %q", name, "STAGE")
	}
	if r.Position() != 8 {
		t.Errorf("position = 0x%X after indirect read, want 0x8", r.Position())
	}
}

func TestSeekPastEnd(t *testing.T) {
	r := New(make([]byte, 8), binary.BigEndian)
	if err := r.Seek(9); err == nil {
		t.Error("seek past the end must fail")
	}
	// Seeking exactly to the end is allowed; the next read fails instead.
	if err := r.Seek(8); err != nil {
		t.Errorf("seek to the end failed: %v", err)
	}
	if _, err := r.ReadU8(); !errors.Is(err, ErrShortRead) {
		t.Errorf("read at the end returned %v, want ErrShortRead", err)
	}
}

func TestShortRead(t *testing.T) {
	r := New([]byte{0x01, 0x02}, binary.BigEndian)
	if _, err := r.ReadU32(); !errors.Is(err, ErrShortRead) {
		t.Errorf("got %v, want ErrShortRead", err)
	}
}

func TestSeekLocationAbsent(t *testing.T) {
	r := New(make([]byte, 8), binary.BigEndian)
	if err := r.SeekLocation(Location{}); !errors.Is(err, ErrAbsent) {
		t.Errorf("got %v, want ErrAbsent", err)
	}
	if err := r.SeekLocation(Single(4)); err != nil {
		t.Errorf("seek to a present location failed: %v", err)
	}
	if r.Position() != 4 {
		t.Errorf("position = %d, want 4", r.Position())
	}
}
