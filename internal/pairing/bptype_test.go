package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strucbio/helixpair/internal/geom"
)

// antiParallelFrames returns an identity frame and an anti-parallel partner
// (x aligned, y and z opposed) at the given origin offset.
func antiParallelFrames(offset geom.Vec3) (geom.Frame, geom.Frame) {
	fa := geom.Frame{X: geom.Vec3{X: 1}, Y: geom.Vec3{Y: 1}, Z: geom.Vec3{Z: 1}}
	fb := geom.Frame{
		Origin: offset,
		X:      geom.Vec3{X: 1}, Y: geom.Vec3{Y: -1}, Z: geom.Vec3{Z: -1},
	}
	return fa, fb
}

func wcResult(pairType string) *ValidationResult {
	return &ValidationResult{
		Valid:    true,
		Dir:      geom.Vec3{X: 1, Y: -1, Z: -1},
		PairType: pairType,
	}
}

func TestBPTypeWatsonCrick(t *testing.T) {
	fa, fb := antiParallelFrames(geom.Vec3{X: 0.5, Z: 0.1})
	assert.Equal(t, BPTypeWatsonCrick, BPTypeID(wcResult("GC"), fa, fb))
	assert.Equal(t, BPTypeWatsonCrick, BPTypeID(wcResult("AU"), fa, fb))
	assert.Equal(t, BPTypeWatsonCrick, BPTypeID(wcResult("XX"), fa, fb), "wildcard pair string")
}

func TestBPTypeWobble(t *testing.T) {
	// Shear (the historical shift slot) of 2.0 is wobble range regardless
	// of the pair string.
	fa, fb := antiParallelFrames(geom.Vec3{X: 2.0})
	assert.Equal(t, BPTypeWobble, BPTypeID(wcResult("GU"), fa, fb))
}

func TestBPTypeUndetermined(t *testing.T) {
	// Stretch (the historical slide slot) beyond 2.0.
	fa, fb := antiParallelFrames(geom.Vec3{Y: 2.5})
	assert.Equal(t, BPTypeUndetermined, BPTypeID(wcResult("GC"), fa, fb))

	// Opening (the historical twist slot) beyond 60 degrees.
	fa2 := geom.Frame{X: geom.Vec3{X: 1}, Y: geom.Vec3{Y: 1}, Z: geom.Vec3{Z: 1}}
	rot := geom.RotationAbout(geom.Vec3{Z: 1}, 70)
	fb2 := geom.FrameFromRotation(rot.Mul(geom.FromCols(
		geom.Vec3{X: 1}, geom.Vec3{Y: -1}, geom.Vec3{Z: -1},
	)), geom.Vec3{})
	res := wcResult("GC")
	res.Dir = geom.Vec3{
		X: fa2.X.Dot(fb2.X),
		Y: fa2.Y.Dot(fb2.Y),
		Z: fa2.Z.Dot(fb2.Z),
	}
	if res.Dir.X > 0 && res.Dir.Y < 0 && res.Dir.Z < 0 {
		assert.Equal(t, BPTypeUndetermined, BPTypeID(res, fa2, fb2))
	}
}

func TestBPTypeRequiresAlignment(t *testing.T) {
	fa := geom.Frame{X: geom.Vec3{X: 1}, Y: geom.Vec3{Y: 1}, Z: geom.Vec3{Z: 1}}

	res := wcResult("GC")
	res.Dir = geom.Vec3{X: 1, Y: 1, Z: 1} // parallel frames: not pair-like
	assert.Equal(t, BPTypeInvalid, BPTypeID(res, fa, fa))
}

func TestBPTypeInvalidPair(t *testing.T) {
	fa, fb := antiParallelFrames(geom.Vec3{X: 0.5})
	res := wcResult("GC")
	res.Valid = false
	assert.Equal(t, BPTypeInvalid, BPTypeID(res, fa, fb))
}

func TestBPTypeNonCanonicalSmallShear(t *testing.T) {
	// Small shear but a non-canonical pair string: neither wobble nor WC.
	fa, fb := antiParallelFrames(geom.Vec3{X: 0.5})
	assert.Equal(t, BPTypeInvalid, BPTypeID(wcResult("GA"), fa, fb))
}
