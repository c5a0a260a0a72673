package stage

// Arena stores decoded records of one kind with stable integer handles.
// Handles are never invalidated during a decode; records are only
// appended.
type Arena[T any] struct {
	slots []T
}

// Alloc stores v and returns a handle to it. The returned Ref's Index
// starts equal to its allocation order; owners of a list view re-number
// it for their own sequence.
func (a *Arena[T]) Alloc(v T) Ref[T] {
	id := uint32(len(a.slots))
	a.slots = append(a.slots, v)
	return Ref[T]{arena: a, id: id, Index: id}
}

// At returns the record with the given handle, or nil if out of range.
func (a *Arena[T]) At(id uint32) *T {
	if int(id) >= len(a.slots) {
		return nil
	}
	return &a.slots[id]
}

// Len returns the number of allocated records.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// Ref is a shared handle to a record in an arena plus the record's local
// index within whatever list owns this view of it. Copying a Ref copies
// the handle, not the record: a global list and any collision header
// that aliases it hold Refs to the same slot, so mutation through one is
// visible through all.
type Ref[T any] struct {
	arena *Arena[T]
	id    uint32

	// Index is the position of the record within the owning list. A
	// record aliased by a collision header keeps its global identity but
	// gets a fresh local Index starting at 0.
	Index uint32
}

// Value returns a pointer to the shared record.
func (r Ref[T]) Value() *T {
	return r.arena.At(r.id)
}

// ID returns the record's arena handle.
func (r Ref[T]) ID() uint32 {
	return r.id
}

// Same reports whether two refs share the same underlying record,
// regardless of their local indices.
func (r Ref[T]) Same(o Ref[T]) bool {
	return r.arena == o.arena && r.id == o.id
}
