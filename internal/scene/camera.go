package scene

import (
	"math"

	"crystalviz/internal/vmath"
)

const nearPlane = 0.5

// Camera orbits the origin. Yaw spins around the vertical, Pitch tilts
// toward the poles, Zoom is the eye distance from the origin.
type Camera struct {
	Yaw, Pitch, Zoom float64
}

// DefaultCamera frames all three axes of a complex at typical distances.
func DefaultCamera() Camera {
	return Camera{Yaw: math.Pi / 5, Pitch: math.Pi / 7, Zoom: 9}
}

// View transforms a world point into camera space. World Z (the
// chemistry "up" axis) maps to screen up before the orbit rotations.
func (c Camera) View(v vmath.Vec3) vmath.Vec3 {
	p := vmath.Vec3{X: v.X, Y: v.Z, Z: v.Y}
	p = p.RotateY(c.Yaw)
	p = p.RotateX(c.Pitch)
	p.Z += c.Zoom
	return p
}

// Project maps a world point to screen coordinates inside a w x h
// viewport. ok is false when the point falls behind the near plane.
// depth is the camera-space distance used for painter's sorting.
func (c Camera) Project(v vmath.Vec3, w, h float64) (x, y, depth float64, ok bool) {
	p := c.View(v)
	if p.Z < nearPlane {
		return 0, 0, 0, false
	}
	f := h
	x = w/2 + p.X*f/p.Z
	y = h/2 - p.Y*f/p.Z
	return x, y, p.Z, true
}

// ScreenRadius converts a world-space radius at the given depth into a
// screen-space radius.
func (c Camera) ScreenRadius(r, depth, h float64) float64 {
	return r * h / depth
}
