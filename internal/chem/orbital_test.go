package chem

import (
	"errors"
	"math"
	"testing"
)

func TestAmplitudeFunctions(t *testing.T) {
	tests := []struct {
		name    string
		orbital Orbital
		theta   float64
		phi     float64
		want    float64
	}{
		{name: "dz2 pole", orbital: Dz2, theta: 0, phi: 0, want: 2},
		{name: "dz2 equator", orbital: Dz2, theta: math.Pi / 2, phi: 1.3, want: -1},
		{name: "dx2y2 +x lobe", orbital: Dx2y2, theta: math.Pi / 2, phi: 0, want: 1},
		{name: "dx2y2 node at 45deg", orbital: Dx2y2, theta: math.Pi / 2, phi: math.Pi / 4, want: 0},
		{name: "dxy lobe at 45deg", orbital: Dxy, theta: math.Pi / 2, phi: math.Pi / 4, want: 1},
		{name: "dxy node on +x", orbital: Dxy, theta: math.Pi / 2, phi: 0, want: 0},
		{name: "dxz lobe", orbital: Dxz, theta: math.Pi / 4, phi: 0, want: 1},
		{name: "dxz node in xy plane", orbital: Dxz, theta: math.Pi / 2, phi: 0, want: 0},
		{name: "dyz lobe", orbital: Dyz, theta: math.Pi / 4, phi: math.Pi / 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.orbital.Amplitude(tt.theta, tt.phi)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("amplitude = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAmplitudeUnknownOrbital(t *testing.T) {
	if _, err := Orbital(42).Amplitude(1, 1); !errors.Is(err, ErrUnknownOrbital) {
		t.Errorf("error = %v, want ErrUnknownOrbital", err)
	}
}

// TestDz2Symmetry samples several azimuths at fixed colatitudes: dz2
// must be rotationally symmetric about the z axis, so the radius cannot
// depend on phi.
func TestDz2Symmetry(t *testing.T) {
	s, err := GenerateOrbitalSurface(Dz2, 1.0, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < s.Resolution; i += 7 {
		ref := s.Vertex(i, 0).Length()
		for j := 1; j < s.Resolution; j += 11 {
			r := s.Vertex(i, j).Length()
			if !almostEqual(r, ref, 1e-9) {
				t.Fatalf("row %d: radius %v at column %d differs from %v", i, r, j, ref)
			}
		}
	}
}

func TestSurfaceDeterministic(t *testing.T) {
	a, err := GenerateOrbitalSurface(Dxy, 1.3, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateOrbitalSurface(Dxy, 1.3, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs between identical calls: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestSurfaceScaleProportional(t *testing.T) {
	small, err := GenerateOrbitalSurface(Dxz, 0.5, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	big, err := GenerateOrbitalSurface(Dxz, 2.0, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range small.Vertices {
		rs, rb := small.Vertices[i].Length(), big.Vertices[i].Length()
		if !almostEqual(rb, 4*rs, 1e-9) {
			t.Fatalf("vertex %d: radius %v at scale 2.0 is not 4x radius %v at scale 0.5", i, rb, rs)
		}
	}
}

// The surface must collapse to the origin along angular nodes; for dxy
// that includes the whole phi=0 meridian.
func TestSurfaceCollapsesAtNodes(t *testing.T) {
	s, err := GenerateOrbitalSurface(Dxy, 1.0, 33)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < s.Resolution; i++ {
		if r := s.Vertex(i, 0).Length(); !almostEqual(r, 0, 1e-12) {
			t.Errorf("row %d: radius %v on nodal meridian, want 0", i, r)
		}
	}
}

func TestGenerateOrbitalSurfaceRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		orbital    Orbital
		scale      float64
		resolution int
	}{
		{name: "unknown orbital", orbital: Orbital(9), scale: 1, resolution: 10},
		{name: "zero scale", orbital: Dz2, scale: 0, resolution: 10},
		{name: "negative scale", orbital: Dz2, scale: -1, resolution: 10},
		{name: "NaN scale", orbital: Dz2, scale: math.NaN(), resolution: 10},
		{name: "infinite scale", orbital: Dz2, scale: math.Inf(1), resolution: 10},
		{name: "resolution too small", orbital: Dz2, scale: 1, resolution: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateOrbitalSurface(tt.orbital, tt.scale, tt.resolution); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestOrbitalLabels(t *testing.T) {
	for _, o := range Orbitals {
		if o.String() == "" || o.Label() == "" {
			t.Errorf("orbital %d has empty name", int(o))
		}
	}
}
