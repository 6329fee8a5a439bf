// Package chem holds the computational core of the visualizer: the
// d-orbital angular functions, the crystal-field splitting model, and
// the ligand geometry. Everything here is pure arithmetic; rendering
// and UI state live elsewhere.
package chem

import (
	"errors"
	"fmt"
	"math"
)

// Orbital identifies one of the five d-orbital angular functions.
type Orbital int

const (
	Dz2 Orbital = iota
	Dx2y2
	Dxy
	Dxz
	Dyz

	orbitalCount
)

// Orbitals lists the five d orbitals in canonical display order.
var Orbitals = [5]Orbital{Dz2, Dx2y2, Dxy, Dxz, Dyz}

var ErrUnknownOrbital = errors.New("unknown orbital")

func (o Orbital) String() string {
	switch o {
	case Dz2:
		return "dz2"
	case Dx2y2:
		return "dx2-y2"
	case Dxy:
		return "dxy"
	case Dxz:
		return "dxz"
	case Dyz:
		return "dyz"
	}
	return fmt.Sprintf("Orbital(%d)", int(o))
}

// Label returns the display form with unicode super/subscripts.
func (o Orbital) Label() string {
	switch o {
	case Dz2:
		return "dz²"
	case Dx2y2:
		return "dx²-y²"
	case Dxy:
		return "dxy"
	case Dxz:
		return "dxz"
	case Dyz:
		return "dyz"
	}
	return o.String()
}

func (o Orbital) valid() bool {
	return o >= 0 && o < orbitalCount
}

// Amplitude evaluates the real angular amplitude of the orbital at
// colatitude theta (from +Z) and azimuth phi (from +X). The sign carries
// the lobe phase; callers rendering probability-density shapes take the
// absolute value.
func (o Orbital) Amplitude(theta, phi float64) (float64, error) {
	sinT := math.Sin(theta)
	switch o {
	case Dz2:
		cosT := math.Cos(theta)
		return 3*cosT*cosT - 1, nil
	case Dx2y2:
		return sinT * sinT * math.Cos(2*phi), nil
	case Dxy:
		return sinT * sinT * math.Sin(2*phi), nil
	case Dxz:
		return math.Sin(2*theta) * math.Cos(phi), nil
	case Dyz:
		return math.Sin(2*theta) * math.Sin(phi), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownOrbital, int(o))
}
