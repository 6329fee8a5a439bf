// Package diagram maps crystal-field energy levels onto bounded
// positions for the energy-level panel. Pure math, no drawing.
package diagram

import (
	"fmt"
	"math"

	"crystalviz/internal/chem"
)

const (
	// Vertical padding keeps extremal bars clear of the axis caption at
	// the top and the ground-state line at the bottom.
	TopPad    = 40.0
	BottomPad = 40.0

	// Energy-space headroom folded into the normalization denominator
	// so the highest level never touches the top of the usable range.
	headroomFrac = 0.15
	baseMargin   = 0.05

	minSlotSpacing = 44.0
	maxSlotSpacing = 120.0
)

// Bar is one positioned energy level: a labeled horizontal bar at
// vertical position Y (container coordinates, origin top-left), offset
// XOffset from the container's horizontal center.
type Bar struct {
	Orbital chem.Orbital
	Label   string
	Slot    int
	XOffset float64
	Y       float64
}

// Layout positions the five orbital bars plus the ground-state
// reference line for one EnergyResult.
type Layout struct {
	Bars    [5]Bar
	GroundY float64
	// TopY and BottomY are the Y positions of the highest and lowest
	// level, for drawing the splitting indicator between them.
	TopY, BottomY float64
}

// Compute lays out an energy result inside a width x height container.
// Every bar Y lands in [TopPad, height-BottomPad] and every XOffset
// stays inside the container, for any finite well-formed input.
func Compute(e chem.EnergyResult, width, height float64) (Layout, error) {
	if !(width > 0) || !(height > 0) {
		return Layout{}, fmt.Errorf("diagram: container %vx%v is not positive", width, height)
	}
	maxE := 0.0
	for _, lv := range e.Levels {
		if math.IsNaN(lv) || math.IsInf(lv, 0) {
			return Layout{}, fmt.Errorf("diagram: non-finite energy level %v", lv)
		}
		maxE = math.Max(maxE, lv)
	}

	usable := height - TopPad - BottomPad
	if usable < 0 {
		usable = 0
	}
	denom := maxE*(1+headroomFrac) + baseMargin

	yFor := func(energy float64) float64 {
		if energy < 0 {
			energy = 0
		}
		y := height - BottomPad - energy/denom*usable
		return clamp(y, TopPad, height-BottomPad)
	}

	spacing := clamp(width/6, minSlotSpacing, maxSlotSpacing)
	if half := width / 2; spacing*2 > half {
		spacing = half / 2
	}

	var l Layout
	l.GroundY = height - BottomPad
	l.TopY = math.Inf(1)
	l.BottomY = math.Inf(-1)
	for slot, o := range chem.Orbitals {
		y := yFor(e.Level(o))
		l.Bars[slot] = Bar{
			Orbital: o,
			Label:   o.Label(),
			Slot:    slot,
			XOffset: (float64(slot) - 2) * spacing,
			Y:       y,
		}
		l.TopY = math.Min(l.TopY, y)
		l.BottomY = math.Max(l.BottomY, y)
	}
	return l, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
