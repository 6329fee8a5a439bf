// Package scene projects the 3D complex onto a 2D canvas: ligand and
// metal spheres, bond lines, wireframe orbital lobes, and axis labels,
// depth-sorted back to front.
package scene

import (
	"image/color"
	"sort"

	"crystalviz/internal/chem"
	"crystalviz/internal/vmath"
)

// Sphere is a shaded ball at a world position.
type Sphere struct {
	Center vmath.Vec3
	Radius float64
	Color  color.RGBA
}

// Bond is a line between two world points.
type Bond struct {
	From, To vmath.Vec3
	Width    float32
	Color    color.RGBA
}

// Mesh pairs an orbital surface with its draw color.
type Mesh struct {
	Surface *chem.Surface
	Color   color.RGBA
}

// Scene is everything the 3D viewport shows for one parameter tuple.
type Scene struct {
	Spheres  []Sphere
	Bonds    []Bond
	Meshes   []Mesh
	ShowAxes bool
	AxisLen  float64
}

type drawItem struct {
	depth float64
	draw  func(Canvas)
}

// Render draws the scene through cam onto dst, a w x h viewport.
// Points behind the near plane are skipped.
func Render(dst Canvas, s Scene, cam Camera, w, h float64) {
	var items []drawItem

	if s.ShowAxes {
		items = append(items, axisItems(s.AxisLen, cam, w, h)...)
	}

	for _, b := range s.Bonds {
		x1, y1, d1, ok1 := cam.Project(b.From, w, h)
		x2, y2, d2, ok2 := cam.Project(b.To, w, h)
		if !ok1 || !ok2 {
			continue
		}
		b := b
		items = append(items, drawItem{
			depth: (d1 + d2) / 2,
			draw: func(c Canvas) {
				c.Line(float32(x1), float32(y1), float32(x2), float32(y2), b.Width, b.Color)
			},
		})
	}

	for _, sp := range s.Spheres {
		x, y, depth, ok := cam.Project(sp.Center, w, h)
		if !ok {
			continue
		}
		r := cam.ScreenRadius(sp.Radius, depth, h)
		col := shade(sp.Color, depth, cam.Zoom)
		items = append(items, drawItem{
			depth: depth,
			draw: func(c Canvas) {
				c.FillCircle(float32(x), float32(y), float32(r), col)
				// faint outline keeps overlapping spheres readable
				rim := col
				rim.R, rim.G, rim.B = rim.R/2, rim.G/2, rim.B/2
				c.FillCircle(float32(x), float32(y), float32(r)*0.15, rim)
			},
		})
	}

	for _, m := range s.Meshes {
		items = append(items, meshItems(m, cam, w, h)...)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, it := range items {
		it.draw(dst)
	}
}

// meshItems turns a surface grid into wireframe segments along both
// parametric directions. The grid is subsampled so draw cost stays
// bounded at high resolutions.
func meshItems(m Mesh, cam Camera, w, h float64) []drawItem {
	res := m.Surface.Resolution
	step := res / 27
	if step < 1 {
		step = 1
	}
	var items []drawItem
	segment := func(a, b vmath.Vec3) {
		x1, y1, d1, ok1 := cam.Project(a, w, h)
		x2, y2, d2, ok2 := cam.Project(b, w, h)
		if !ok1 || !ok2 {
			return
		}
		items = append(items, drawItem{
			depth: (d1 + d2) / 2,
			draw: func(c Canvas) {
				c.Line(float32(x1), float32(y1), float32(x2), float32(y2), 1, m.Color)
			},
		})
	}
	for i := 0; i < res; i += step {
		for j := 0; j+step < res; j += step {
			segment(m.Surface.Vertex(i, j), m.Surface.Vertex(i, j+step))
		}
	}
	for j := 0; j < res; j += step {
		for i := 0; i+step < res; i += step {
			segment(m.Surface.Vertex(i, j), m.Surface.Vertex(i+step, j))
		}
	}
	return items
}

var axisColor = color.RGBA{R: 120, G: 130, B: 150, A: 255}

func axisItems(length float64, cam Camera, w, h float64) []drawItem {
	if length <= 0 {
		length = 5
	}
	axes := []struct {
		dir   vmath.Vec3
		label string
	}{
		{vmath.Vec3{X: 1}, "+X"},
		{vmath.Vec3{Y: 1}, "+Y"},
		{vmath.Vec3{Z: 1}, "+Z"},
	}
	var items []drawItem
	for _, ax := range axes {
		from := ax.dir.Scale(-length)
		to := ax.dir.Scale(length)
		x1, y1, d1, ok1 := cam.Project(from, w, h)
		x2, y2, d2, ok2 := cam.Project(to, w, h)
		if !ok1 || !ok2 {
			continue
		}
		label := ax.label
		items = append(items, drawItem{
			depth: (d1 + d2) / 2,
			draw: func(c Canvas) {
				c.Line(float32(x1), float32(y1), float32(x2), float32(y2), 1, axisColor)
				// labels are drawn in screen space, so they stay
				// upright and face the viewer at any camera angle
				c.Label(int(x2)+4, int(y2)-4, label)
			},
		})
	}
	return items
}

// shade applies a depth cue: nearer geometry renders brighter.
func shade(c color.RGBA, depth, zoom float64) color.RGBA {
	i := 1.25 - depth/(2*zoom)
	if i > 1 {
		i = 1
	}
	if i < 0.45 {
		i = 0.45
	}
	return color.RGBA{
		R: uint8(float64(c.R) * i),
		G: uint8(float64(c.G) * i),
		B: uint8(float64(c.B) * i),
		A: c.A,
	}
}
