package types

import "fmt"

// Point3 is an integer coordinate in shaft space. X runs across the width,
// Y across the height and Z is the depth axis, with z=0 at the shaft floor.
type Point3 struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point3) Sub(o Point3) Point3 {
	return Point3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Dot returns the dot product of p and o.
func (p Point3) Dot(o Point3) int {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Vec3 converts the point to a float vector for display purposes.
func (p Point3) Vec3() Vec3 {
	return Vec3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Vec3 is a float vector used for display-only values like shape centers.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// CopyPoints returns a copy of points. A nil slice stays nil.
func CopyPoints(points []Point3) []Point3 {
	if points == nil {
		return nil
	}
	out := make([]Point3, len(points))
	copy(out, points)
	return out
}
