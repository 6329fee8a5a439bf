package chem

import (
	"fmt"
	"math"

	"crystalviz/internal/vmath"
)

// DefaultResolution is the grid density used by the app for orbital
// meshes. High enough that lobes look smooth, low enough to regenerate
// within a frame when a slider moves.
const DefaultResolution = 82

// Surface is a parametric orbital mesh: a Resolution x Resolution grid
// of vertices swept over colatitude and azimuth. Adjacent grid points
// form quads; Vertex(i, j) addresses row i (theta) and column j (phi).
type Surface struct {
	Orbital    Orbital
	Resolution int
	Vertices   []vmath.Vec3
}

func (s *Surface) Vertex(i, j int) vmath.Vec3 {
	return s.Vertices[i*s.Resolution+j]
}

// GenerateOrbitalSurface sweeps the orbital's angular function over the
// full sphere and returns the resulting mesh. Radius at each grid point
// is |amplitude| * scale, so the surface collapses to the origin along
// the orbital's angular nodes.
func GenerateOrbitalSurface(o Orbital, scale float64, resolution int) (*Surface, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrbital, int(o))
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("orbital surface: scale must be positive and finite, got %v", scale)
	}
	if resolution < 2 {
		return nil, fmt.Errorf("orbital surface: resolution must be >= 2, got %d", resolution)
	}

	s := &Surface{
		Orbital:    o,
		Resolution: resolution,
		Vertices:   make([]vmath.Vec3, resolution*resolution),
	}
	for i := 0; i < resolution; i++ {
		theta := math.Pi * float64(i) / float64(resolution-1)
		for j := 0; j < resolution; j++ {
			phi := 2 * math.Pi * float64(j) / float64(resolution-1)
			amp, err := o.Amplitude(theta, phi)
			if err != nil {
				return nil, err
			}
			r := math.Abs(amp) * scale
			s.Vertices[i*resolution+j] = vmath.FromSpherical(r, theta, phi)
		}
	}
	return s, nil
}
