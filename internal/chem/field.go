package chem

import (
	"errors"
	"fmt"
	"math"
)

// Geometry is the coordination geometry of the complex. It fixes both
// the ligand placement and the splitting pattern.
type Geometry int

const (
	Octahedral Geometry = iota
	Tetrahedral
	SquarePlanar

	geometryCount
)

// Geometries lists the supported coordination geometries.
var Geometries = [3]Geometry{Octahedral, Tetrahedral, SquarePlanar}

var ErrUnknownGeometry = errors.New("unknown geometry")

func (g Geometry) String() string {
	switch g {
	case Octahedral:
		return "octahedral"
	case Tetrahedral:
		return "tetrahedral"
	case SquarePlanar:
		return "square planar"
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

func (g Geometry) valid() bool {
	return g >= 0 && g < geometryCount
}

// LigandCount returns how many ligands the geometry places.
func (g Geometry) LigandCount() int {
	if g == Octahedral {
		return 6
	}
	return 4
}

// EnergyResult holds the relative energy of each d orbital under a
// ligand field, in arbitrary energy units with the free ion near zero.
// Degenerate orbitals carry exactly equal values. Splitting is always
// max(level) - min(level).
type EnergyResult struct {
	Geometry  Geometry
	Levels    [5]float64
	Splitting float64
}

// Level returns the energy of a single orbital.
func (e EnergyResult) Level(o Orbital) float64 {
	return e.Levels[o]
}

// EG and T2G are the grouped octahedral levels; E2 and T2 the
// tetrahedral ones. They simply read a representative member of the
// degenerate set.
func (e EnergyResult) EG() float64  { return e.Levels[Dz2] }
func (e EnergyResult) T2G() float64 { return e.Levels[Dxy] }
func (e EnergyResult) E2() float64  { return e.Levels[Dz2] }
func (e EnergyResult) T2() float64  { return e.Levels[Dxy] }

// distanceScaler dampens the field as the ligands move out, mapping
// distance 1..4 linearly onto 1.0..0.05. Outside that range the value
// is held at the nearer endpoint; the inverse-cube term keeps the
// overall falloff strictly monotonic.
func distanceScaler(distance float64) float64 {
	s := 0.05 + (4-distance)/3*0.95
	if s > 1 {
		return 1
	}
	if s < 0.05 {
		return 0.05
	}
	return s
}

// CalculateSplitting computes the crystal-field energy levels for the
// given geometry, metal-ligand distance and ligand field strength. The
// model is a tuned heuristic: field intensity falls off with the cube
// of the distance and is damped further by distanceScaler, then fixed
// per-geometry coefficients distribute it over the orbitals.
func CalculateSplitting(g Geometry, distance, strength float64) (EnergyResult, error) {
	if !g.valid() {
		return EnergyResult{}, fmt.Errorf("%w: %d", ErrUnknownGeometry, int(g))
	}
	if !(distance > 0) || math.IsInf(distance, 0) {
		return EnergyResult{}, fmt.Errorf("splitting: distance must be positive and finite, got %v", distance)
	}
	if !(strength > 0) || math.IsInf(strength, 0) {
		return EnergyResult{}, fmt.Errorf("splitting: ligand strength must be positive and finite, got %v", strength)
	}

	base := strength / (distance * distance * distance) * distanceScaler(distance)

	res := EnergyResult{Geometry: g}
	switch g {
	case Octahedral:
		// eg points at the ligands and is destabilized most.
		rise := base * 0.8
		eg := rise + base*0.3
		t2g := rise - base*0.3
		res.Levels = [5]float64{eg, eg, t2g, t2g, t2g}
	case Tetrahedral:
		// Inverted relative to octahedral: t2 sits higher than e.
		rise := base * 0.7
		t2 := rise + base*0.15
		e := rise - base*0.15
		res.Levels = [5]float64{e, e, t2, t2, t2}
	case SquarePlanar:
		rise := base * 0.6
		res.Levels = [5]float64{
			Dz2:   rise + base*0.1,
			Dx2y2: rise + base*0.4,
			Dxy:   rise + base*0.25,
			Dxz:   rise - base*0.5,
			Dyz:   rise - base*0.5,
		}
	}

	lo, hi := res.Levels[0], res.Levels[0]
	for _, lv := range res.Levels[1:] {
		lo = math.Min(lo, lv)
		hi = math.Max(hi, lv)
	}
	res.Splitting = hi - lo
	return res, nil
}
