// Package cursor provides a seekable byte cursor over an in-memory
// stagedef buffer, with typed reads for the fixed-size primitives the
// format is built from.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/smbworkshop/stagedef/stage"
)

// ErrAbsent is returned when seeking to an absent location.
var ErrAbsent = errors.New("cursor: location is absent")

// ErrShortRead is returned when a read runs past the end of the buffer.
var ErrShortRead = errors.New("cursor: short read")

// LocationKind tags a Location value.
type LocationKind uint8

const (
	// LocAbsent means the field, or the structure it refers to, does not
	// exist. Nothing will be read.
	LocAbsent LocationKind = iota
	// LocSingle points to a single structure.
	LocSingle
	// LocCounted points to a contiguous list of structures.
	LocCounted
)

// Location is a tagged file location: absent, a single byte offset, or a
// count plus byte offset describing a contiguous list.
type Location struct {
	Kind   LocationKind
	Count  uint32
	Offset uint32
}

// Single returns a location pointing at one structure.
func Single(offset uint32) Location {
	return Location{Kind: LocSingle, Offset: offset}
}

// Counted returns a location describing a contiguous list. A zero count
// or zero offset normalizes to absent; this is the one place in the
// decoder where that rule is applied.
func Counted(count, offset uint32) Location {
	if count == 0 || offset == 0 {
		return Location{}
	}
	return Location{Kind: LocCounted, Count: count, Offset: offset}
}

// IsAbsent reports whether the location carries nothing to read.
func (l Location) IsAbsent() bool {
	return l.Kind == LocAbsent
}

// Reader is a byte cursor over a whole stagedef buffer. The byte order
// is fixed at construction and threaded through every read, so the same
// schema works against both orderings.
type Reader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// New creates a Reader over data using the given byte order.
func New(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

// Len returns the total buffer size.
func (r *Reader) Len() int {
	return len(r.data)
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Order returns the byte order the reader was constructed with.
func (r *Reader) Order() binary.ByteOrder {
	return r.order
}

// Seek moves the cursor to an absolute byte offset.
func (r *Reader) Seek(offset uint32) error {
	if int64(offset) > int64(len(r.data)) {
		return fmt.Errorf("seek to 0x%X past end (buffer length 0x%X)", offset, len(r.data))
	}
	r.pos = int(offset)
	return nil
}

// SeekLocation moves the cursor to a location's offset. Seeking to an
// absent location fails with ErrAbsent.
func (r *Reader) SeekLocation(loc Location) error {
	if loc.IsAbsent() {
		return ErrAbsent
	}
	return r.Seek(loc.Offset)
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("at offset 0x%X: %w (need %d bytes, have %d)",
			r.pos, ErrShortRead, n, len(r.data)-r.pos)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a fixed 2-byte unsigned integer.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadU32 reads a fixed 4-byte unsigned integer.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadF32 reads a 32-bit IEEE 754 float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadVec3 reads three consecutive 32-bit floats.
func (r *Reader) ReadVec3() (stage.Vec3, error) {
	var v stage.Vec3
	var err error
	if v.X, err = r.ReadF32(); err != nil {
		return stage.Vec3{}, err
	}
	if v.Y, err = r.ReadF32(); err != nil {
		return stage.Vec3{}, err
	}
	if v.Z, err = r.ReadF32(); err != nil {
		return stage.Vec3{}, err
	}
	return v, nil
}

// ReadRotVec3 reads three consecutive 16-bit quantized rotation
// components.
func (r *Reader) ReadRotVec3() (stage.RotVec3, error) {
	var v stage.RotVec3
	var err error
	if v.X, err = r.ReadU16(); err != nil {
		return stage.RotVec3{}, err
	}
	if v.Y, err = r.ReadU16(); err != nil {
		return stage.RotVec3{}, err
	}
	if v.Z, err = r.ReadU16(); err != nil {
		return stage.RotVec3{}, err
	}
	return v, nil
}

// ReadOffset reads a single 32-bit absolute byte offset.
func (r *Reader) ReadOffset() (Location, error) {
	off, err := r.ReadU32()
	if err != nil {
		return Location{}, err
	}
	return Single(off), nil
}

// ReadCountOffset reads a 32-bit count followed by a 32-bit absolute
// byte offset, normalized to absent when either is zero.
func (r *Reader) ReadCountOffset() (Location, error) {
	count, err := r.ReadU32()
	if err != nil {
		return Location{}, err
	}
	off, err := r.ReadU32()
	if err != nil {
		return Location{}, err
	}
	return Counted(count, off), nil
}

// ReadIndirectName reads a 32-bit offset, jumps to it, reads a
// null-terminated byte sequence, and restores the cursor to just after
// the offset field.
func (r *Reader) ReadIndirectName() (string, error) {
	nameOff, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	ret := r.pos
	if err := r.Seek(nameOff); err != nil {
		return "", err
	}
	var name []byte
	for {
		b, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		name = append(name, b)
	}
	r.pos = ret
	return string(name), nil
}
