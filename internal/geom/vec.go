// Package geom provides the small fixed-size linear algebra used throughout
// the pairing and helix code: 3-vectors, 3x3 rotation matrices, and base
// reference frames.
package geom

import "math"

// Epsilon below which a vector magnitude is treated as zero.
const Epsilon = 1e-9

// Vec3 is a point or direction in 3-D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the magnitude of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the distance between v and w.
func (v Vec3) Dist(w Vec3) float64 {
	return v.Sub(w).Norm()
}

// Normalize returns the unit vector along v. The boolean is false when v is
// degenerate (near-zero magnitude), in which case v is returned unchanged.
func (v Vec3) Normalize() (Vec3, bool) {
	n := v.Norm()
	if n < Epsilon {
		return v, false
	}
	return v.Scale(1 / n), true
}

// Mid returns the midpoint of v and w.
func (v Vec3) Mid(w Vec3) Vec3 {
	return v.Add(w).Scale(0.5)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// AngleDeg returns the angle between a and b in degrees, in [0, 180].
// Degenerate input yields 0.
func AngleDeg(a, b Vec3) float64 {
	ua, oka := a.Normalize()
	ub, okb := b.Normalize()
	if !oka || !okb {
		return 0
	}
	return math.Acos(Clamp(ua.Dot(ub), -1, 1)) * 180 / math.Pi
}

// SignedAngleDeg returns the angle from a to b in degrees, signed by the
// orientation of the rotation about ref (positive when a x b points along
// ref).
func SignedAngleDeg(a, b, ref Vec3) float64 {
	ang := AngleDeg(a, b)
	if a.Cross(b).Dot(ref) < 0 {
		return -ang
	}
	return ang
}
