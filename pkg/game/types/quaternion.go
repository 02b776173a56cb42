package types

import "github.com/chewxy/math32"

// Quaternion is a rotation used by renderers to interpolate piece rotations.
type Quaternion struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// IdentityQuaternion is the rotation that leaves everything in place.
var IdentityQuaternion = Quaternion{W: 1}

// QuaternionFromAxisAngle returns the rotation of degrees around axis.
// A zero axis yields the identity.
func QuaternionFromAxisAngle(degrees float32, axis Vec3) Quaternion {
	length := math32.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if length == 0 {
		return IdentityQuaternion
	}
	half := degrees * math32.Pi / 360
	s := math32.Sin(half) / length
	return Quaternion{
		W: math32.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul returns the Hamilton product q*r, i.e. r applied first and then q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// AxisAngle decomposes the rotation into an angle in degrees and a unit axis.
func (q Quaternion) AxisAngle() (float32, Vec3) {
	w := q.W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	angle := 2 * math32.Acos(w) * 180 / math32.Pi
	s := math32.Sqrt(1 - w*w)
	if s < 1e-6 {
		return 0, Vec3{X: 1}
	}
	return angle, Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	conj := Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
	r := q.Mul(p).Mul(conj)
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}
