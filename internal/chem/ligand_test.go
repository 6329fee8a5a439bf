package chem

import (
	"errors"
	"math"
	"testing"
)

func TestLigandPositionCounts(t *testing.T) {
	tests := []struct {
		geometry Geometry
		want     int
	}{
		{geometry: Octahedral, want: 6},
		{geometry: Tetrahedral, want: 4},
		{geometry: SquarePlanar, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.geometry.String(), func(t *testing.T) {
			positions, err := LigandPositions(tt.geometry, 2.5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(positions) != tt.want {
				t.Errorf("got %d positions, want %d", len(positions), tt.want)
			}
			if got := tt.geometry.LigandCount(); got != tt.want {
				t.Errorf("LigandCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestLigandDistanceInvariant checks that every ligand sits exactly at
// the requested distance from the metal center, for every geometry.
func TestLigandDistanceInvariant(t *testing.T) {
	distances := []float64{0.5, 1.0, 2.0, 3.3, 4.0, 10.0}
	for _, g := range Geometries {
		for _, d := range distances {
			positions, err := LigandPositions(g, d)
			if err != nil {
				t.Fatalf("%v d=%v: %v", g, d, err)
			}
			for i, p := range positions {
				if rel := math.Abs(p.Length()-d) / d; rel > 1e-9 {
					t.Errorf("%v d=%v: ligand %d at norm %v (relative error %v)", g, d, i, p.Length(), rel)
				}
			}
		}
	}
}

// TestTetrahedralAngles verifies the pairwise angle between vertex
// vectors is the tetrahedral angle, ~109.47 degrees.
func TestTetrahedralAngles(t *testing.T) {
	positions, err := LigandPositions(Tetrahedral, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Acos(-1.0 / 3.0) // 109.47°
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			cosA := positions[i].Dot(positions[j]) / (positions[i].Length() * positions[j].Length())
			angle := math.Acos(cosA)
			if math.Abs(angle-want) > 1e-9 {
				t.Errorf("angle between vertices %d,%d = %v rad, want %v", i, j, angle, want)
			}
		}
	}
}

func TestSquarePlanarStaysInPlane(t *testing.T) {
	positions, err := LigandPositions(SquarePlanar, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range positions {
		if p.Z != 0 {
			t.Errorf("ligand %d has z=%v, want 0", i, p.Z)
		}
	}
}

func TestLigandPositionsRejectsBadInput(t *testing.T) {
	if _, err := LigandPositions(Geometry(9), 2.0); !errors.Is(err, ErrUnknownGeometry) {
		t.Errorf("unknown geometry: error = %v, want ErrUnknownGeometry", err)
	}
	for _, d := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if _, err := LigandPositions(Octahedral, d); err == nil {
			t.Errorf("distance %v: expected error, got nil", d)
		}
	}
}

func TestCatalogOrderedByStrength(t *testing.T) {
	if len(Catalog) == 0 {
		t.Fatal("catalog is empty")
	}
	prev := 0.0
	for _, l := range Catalog {
		if l.Strength <= prev {
			t.Errorf("%s: strength %v not above previous %v", l.Name, l.Strength, prev)
		}
		if l.Strength < 1 || l.Strength > 10 {
			t.Errorf("%s: strength %v outside 1..10", l.Name, l.Strength)
		}
		prev = l.Strength
	}
}
