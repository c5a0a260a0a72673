package stagedef

import (
	"github.com/smbworkshop/stagedef/errors"
	"github.com/smbworkshop/stagedef/internal/cursor"
	"github.com/smbworkshop/stagedef/stage"
)

// Per-kind record decoders. Each reads exactly Kind.Size() bytes worth
// of fields from the cursor; the list reader re-seeks per element, so a
// decoder that fails mid-record cannot corrupt its neighbors.

func readGoal(r *cursor.Reader) (stage.Goal, error) {
	var g stage.Goal
	var err error
	if g.Position, err = r.ReadVec3(); err != nil {
		return stage.Goal{}, err
	}
	if g.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.Goal{}, err
	}
	tb, err := r.ReadU8()
	if err != nil {
		return stage.Goal{}, err
	}
	if tb > uint8(stage.GoalRed) {
		return stage.Goal{}, errors.InvalidEnum(errors.PhaseObject, nil, tb, "GoalType")
	}
	g.Type = stage.GoalType(tb)
	if _, err = r.ReadU8(); err != nil { // padding
		return stage.Goal{}, err
	}
	return g, nil
}

func readBumper(r *cursor.Reader) (stage.Bumper, error) {
	var b stage.Bumper
	var err error
	if b.Position, err = r.ReadVec3(); err != nil {
		return stage.Bumper{}, err
	}
	if b.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.Bumper{}, err
	}
	if _, err = r.ReadU16(); err != nil { // padding
		return stage.Bumper{}, err
	}
	if b.Scale, err = r.ReadVec3(); err != nil {
		return stage.Bumper{}, err
	}
	return b, nil
}

func readJamabar(r *cursor.Reader) (stage.Jamabar, error) {
	var j stage.Jamabar
	var err error
	if j.Position, err = r.ReadVec3(); err != nil {
		return stage.Jamabar{}, err
	}
	if j.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.Jamabar{}, err
	}
	if _, err = r.ReadU16(); err != nil { // padding
		return stage.Jamabar{}, err
	}
	if j.Scale, err = r.ReadVec3(); err != nil {
		return stage.Jamabar{}, err
	}
	return j, nil
}

func readBanana(r *cursor.Reader) (stage.Banana, error) {
	var b stage.Banana
	var err error
	if b.Position, err = r.ReadVec3(); err != nil {
		return stage.Banana{}, err
	}
	t, err := r.ReadU32()
	if err != nil {
		return stage.Banana{}, err
	}
	b.Type = stage.BananaType(t)
	return b, nil
}

func readConeCollision(r *cursor.Reader) (stage.ConeCollision, error) {
	var c stage.ConeCollision
	var err error
	if c.Position, err = r.ReadVec3(); err != nil {
		return stage.ConeCollision{}, err
	}
	if c.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.ConeCollision{}, err
	}
	if _, err = r.ReadU16(); err != nil { // padding
		return stage.ConeCollision{}, err
	}
	if c.Radius1, err = r.ReadF32(); err != nil {
		return stage.ConeCollision{}, err
	}
	if c.Height, err = r.ReadF32(); err != nil {
		return stage.ConeCollision{}, err
	}
	if c.Radius2, err = r.ReadF32(); err != nil {
		return stage.ConeCollision{}, err
	}
	return c, nil
}

func readSphereCollision(r *cursor.Reader) (stage.SphereCollision, error) {
	var s stage.SphereCollision
	var err error
	if s.Position, err = r.ReadVec3(); err != nil {
		return stage.SphereCollision{}, err
	}
	if s.Radius, err = r.ReadF32(); err != nil {
		return stage.SphereCollision{}, err
	}
	if s.Unk0x10, err = r.ReadU32(); err != nil {
		return stage.SphereCollision{}, err
	}
	return s, nil
}

func readCylinderCollision(r *cursor.Reader) (stage.CylinderCollision, error) {
	var c stage.CylinderCollision
	var err error
	if c.Position, err = r.ReadVec3(); err != nil {
		return stage.CylinderCollision{}, err
	}
	if c.Radius, err = r.ReadF32(); err != nil {
		return stage.CylinderCollision{}, err
	}
	if c.Height, err = r.ReadF32(); err != nil {
		return stage.CylinderCollision{}, err
	}
	if c.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.CylinderCollision{}, err
	}
	if c.Unk0x1A, err = r.ReadU16(); err != nil {
		return stage.CylinderCollision{}, err
	}
	return c, nil
}

func readFalloutVolume(r *cursor.Reader) (stage.FalloutVolume, error) {
	var f stage.FalloutVolume
	var err error
	if f.Position, err = r.ReadVec3(); err != nil {
		return stage.FalloutVolume{}, err
	}
	if f.Size, err = r.ReadVec3(); err != nil {
		return stage.FalloutVolume{}, err
	}
	if f.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.FalloutVolume{}, err
	}
	if f.Unk0x1E, err = r.ReadU16(); err != nil {
		return stage.FalloutVolume{}, err
	}
	return f, nil
}

func readBackgroundModel(r *cursor.Reader) (stage.BackgroundModel, error) {
	var b stage.BackgroundModel
	var err error
	if b.Unk0x0, err = r.ReadU32(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.ModelName, err = r.ReadIndirectName(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.Unk0x8, err = r.ReadU32(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.Position, err = r.ReadVec3(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.Rotation, err = r.ReadRotVec3(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.Unk0x1E, err = r.ReadU16(); err != nil {
		return stage.BackgroundModel{}, err
	}
	if b.Scale, err = r.ReadVec3(); err != nil {
		return stage.BackgroundModel{}, err
	}
	// Animation header, animation header 2, effect header pointers are
	// not decoded.
	for i := 0; i < 3; i++ {
		if _, err = r.ReadU32(); err != nil {
			return stage.BackgroundModel{}, err
		}
	}
	return b, nil
}
