package vmath

import "math"

// Vec3 is a float64 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSq() float64 { return v.Dot(v) }
func (v Vec3) Length() float64   { return math.Sqrt(v.LengthSq()) }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateY rotates v about the Y axis by theta radians.
func (v Vec3) RotateY(theta float64) Vec3 {
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	return Vec3{
		X: cosT*v.X + sinT*v.Z,
		Y: v.Y,
		Z: -sinT*v.X + cosT*v.Z,
	}
}

// RotateX rotates v about the X axis by theta radians.
func (v Vec3) RotateX(theta float64) Vec3 {
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	return Vec3{
		X: v.X,
		Y: cosT*v.Y - sinT*v.Z,
		Z: sinT*v.Y + cosT*v.Z,
	}
}

// FromSpherical converts spherical coordinates to Cartesian.
// theta is the colatitude from +Z (0..pi), phi the azimuth from +X (0..2pi).
func FromSpherical(r, theta, phi float64) Vec3 {
	sinT := math.Sin(theta)
	return Vec3{
		X: r * sinT * math.Cos(phi),
		Y: r * sinT * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}
