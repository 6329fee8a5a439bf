package chem

import (
	"fmt"
	"image/color"
	"math"

	"crystalviz/internal/vmath"
)

// LigandPositions returns the metal-relative offsets of every ligand
// for the geometry, each at Euclidean distance exactly `distance` from
// the origin. Order is stable so callers can key markers by index.
func LigandPositions(g Geometry, distance float64) ([]vmath.Vec3, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeometry, int(g))
	}
	if !(distance > 0) || math.IsInf(distance, 0) {
		return nil, fmt.Errorf("ligand positions: distance must be positive and finite, got %v", distance)
	}

	d := distance
	switch g {
	case Octahedral:
		return []vmath.Vec3{
			{X: d}, {X: -d},
			{Y: d}, {Y: -d},
			{Z: d}, {Z: -d},
		}, nil
	case SquarePlanar:
		return []vmath.Vec3{
			{X: d}, {X: -d},
			{Y: d}, {Y: -d},
		}, nil
	case Tetrahedral:
		// Alternating-sign corners of a cube, scaled so each vertex
		// lands on the sphere of radius d.
		s := d / math.Sqrt(3)
		return []vmath.Vec3{
			{X: s, Y: s, Z: s},
			{X: s, Y: -s, Z: -s},
			{X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s},
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownGeometry, int(g))
}

// Ligand is one entry of the spectrochemical series the UI offers.
// Strength feeds CalculateSplitting; Color tints the ligand spheres.
type Ligand struct {
	Name     string
	Strength float64
	Color    color.RGBA
}

// Catalog lists common ligands in ascending field strength.
var Catalog = []Ligand{
	{Name: "I⁻", Strength: 1, Color: color.RGBA{R: 148, G: 0, B: 211, A: 255}},
	{Name: "Br⁻", Strength: 2, Color: color.RGBA{R: 165, G: 42, B: 42, A: 255}},
	{Name: "Cl⁻", Strength: 3, Color: color.RGBA{R: 50, G: 205, B: 50, A: 255}},
	{Name: "F⁻", Strength: 4, Color: color.RGBA{R: 144, G: 238, B: 144, A: 255}},
	{Name: "OH⁻", Strength: 5, Color: color.RGBA{R: 176, G: 224, B: 230, A: 255}},
	{Name: "H₂O", Strength: 6, Color: color.RGBA{R: 30, G: 144, B: 255, A: 255}},
	{Name: "NH₃", Strength: 7, Color: color.RGBA{R: 100, G: 149, B: 237, A: 255}},
	{Name: "en", Strength: 8, Color: color.RGBA{R: 255, G: 165, B: 0, A: 255}},
	{Name: "CN⁻", Strength: 9, Color: color.RGBA{R: 220, G: 20, B: 60, A: 255}},
	{Name: "CO", Strength: 10, Color: color.RGBA{R: 60, G: 60, B: 60, A: 255}},
}
