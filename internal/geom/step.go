package geom

import "math"

// StepParameters holds the six rigid-body parameters relating two reference
// frames: three translations expressed in the middle frame and three
// rotations about its axes.
type StepParameters struct {
	Shift, Slide, Rise float64
	Tilt, Roll, Twist  float64
}

// Step computes the rigid-body parameters taking frame f1 into frame f2,
// using the middle-frame convention: each frame is rotated halfway about the
// hinge axis (z1 x z2) so their z axes coincide, the middle frame averages
// the rotated axes, and the origin difference is expressed in middle-frame
// coordinates.
//
// When the two z axes are (anti-)parallel the hinge is degenerate; the
// combined bend is then zero and the frames are used unrotated.
func Step(f1, f2 Frame) StepParameters {
	hinge := f1.Z.Cross(f2.Z)
	bend := AngleDeg(f1.Z, f2.Z)

	r1 := f1
	r2 := f2
	if _, ok := hinge.Normalize(); ok {
		m1 := RotationAbout(hinge, bend/2).Mul(f1.Rotation())
		m2 := RotationAbout(hinge, -bend/2).Mul(f2.Rotation())
		r1 = FrameFromRotation(m1, f1.Origin)
		r2 = FrameFromRotation(m2, f2.Origin)
	} else {
		bend = 0
	}

	mz, _ := r1.Z.Add(r2.Z).Normalize()
	mx, okx := r1.X.Add(r2.X).Normalize()
	my, oky := r1.Y.Add(r2.Y).Normalize()
	if !okx || !oky {
		// Twist near 180 degrees: the axis sums cancel. Fall back to the
		// first frame's in-plane axes.
		mx, my = r1.X, r1.Y
	}

	twist := SignedAngleDeg(r1.X, r2.X, mz)

	// Decompose the bend into tilt and roll by the hinge's phase angle in
	// the middle frame.
	phi := SignedAngleDeg(hinge, my, mz) * math.Pi / 180
	tilt := bend * math.Sin(phi)
	roll := bend * math.Cos(phi)

	d := f2.Origin.Sub(f1.Origin)
	return StepParameters{
		Shift: d.Dot(mx),
		Slide: d.Dot(my),
		Rise:  d.Dot(mz),
		Tilt:  tilt,
		Roll:  roll,
		Twist: twist,
	}
}
