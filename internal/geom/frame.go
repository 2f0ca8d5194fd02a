package geom

// Frame is a base reference frame: an origin plus an orthonormal rotation
// expressed as three axis vectors. Axes are unit length and mutually
// orthogonal; the frame-fitting code is responsible for that invariant.
type Frame struct {
	Origin  Vec3
	X, Y, Z Vec3
}

// Rotation returns the frame's rotation matrix with the axes as columns.
func (f Frame) Rotation() Mat3 {
	return FromCols(f.X, f.Y, f.Z)
}

// FrameFromRotation builds a frame from a rotation matrix and an origin.
func FrameFromRotation(r Mat3, origin Vec3) Frame {
	return Frame{
		Origin: origin,
		X:      r.Col(0),
		Y:      r.Col(1),
		Z:      r.Col(2),
	}
}

// FlipYZ returns the frame with its y and z axes negated. This is the
// transformation applied to the second base of a pair when comparing an
// anti-parallel duplex in a common coordinate system.
func (f Frame) FlipYZ() Frame {
	return Frame{Origin: f.Origin, X: f.X, Y: f.Y.Neg(), Z: f.Z.Neg()}
}

// IsSet reports whether the frame carries a usable rotation. The zero Frame
// has zero-length axes and is not usable.
func (f Frame) IsSet() bool {
	return f.X.Norm() > Epsilon && f.Y.Norm() > Epsilon && f.Z.Norm() > Epsilon
}
