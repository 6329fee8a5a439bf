package diagram

import (
	"math"
	"testing"

	"crystalviz/internal/chem"
)

const (
	panelW = 420.0
	panelH = 720.0
)

func mustSplit(t *testing.T, g chem.Geometry, d, s float64) chem.EnergyResult {
	t.Helper()
	res, err := chem.CalculateSplitting(g, d, s)
	if err != nil {
		t.Fatalf("CalculateSplitting(%v, %v, %v): %v", g, d, s, err)
	}
	return res
}

// TestBoundsInvariant drives the layout with the strongest field the UI
// can produce: every bar must stay inside the padded container.
func TestBoundsInvariant(t *testing.T) {
	for _, g := range chem.Geometries {
		for _, in := range []struct{ d, s float64 }{
			{d: 1.0, s: 10},
			{d: 4.0, s: 1},
			{d: 2.0, s: 6},
		} {
			l, err := Compute(mustSplit(t, g, in.d, in.s), panelW, panelH)
			if err != nil {
				t.Fatalf("%v d=%v s=%v: %v", g, in.d, in.s, err)
			}
			for _, bar := range l.Bars {
				if bar.Y < TopPad || bar.Y > panelH-BottomPad {
					t.Errorf("%v d=%v s=%v: %s at y=%v outside [%v, %v]", g, in.d, in.s, bar.Label, bar.Y, TopPad, panelH-BottomPad)
				}
				if x := math.Abs(bar.XOffset); x > panelW/2 {
					t.Errorf("%v: %s x offset %v outside container half-width %v", g, bar.Label, bar.XOffset, panelW/2)
				}
			}
		}
	}
}

// Higher energy must always draw higher on screen (smaller Y).
func TestVerticalOrderMatchesEnergy(t *testing.T) {
	for _, g := range chem.Geometries {
		e := mustSplit(t, g, 1.5, 8)
		l, err := Compute(e, panelW, panelH)
		if err != nil {
			t.Fatalf("%v: %v", g, err)
		}
		for i, a := range l.Bars {
			for j, b := range l.Bars {
				ea, eb := e.Level(a.Orbital), e.Level(b.Orbital)
				if ea > eb && a.Y >= b.Y {
					t.Errorf("%v: %s (E=%v) at y=%v not above %s (E=%v) at y=%v [bars %d,%d]",
						g, a.Label, ea, a.Y, b.Label, eb, b.Y, i, j)
				}
				if ea == eb && a.Y != b.Y {
					t.Errorf("%v: degenerate %s and %s drawn at different heights %v, %v", g, a.Label, b.Label, a.Y, b.Y)
				}
			}
		}
	}
}

func TestSlotsAreDistinctAndOrdered(t *testing.T) {
	l, err := Compute(mustSplit(t, chem.Octahedral, 2, 6), panelW, panelH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, bar := range l.Bars {
		if bar.Slot != i {
			t.Errorf("bar %d has slot %d", i, bar.Slot)
		}
		if i > 0 && bar.XOffset <= l.Bars[i-1].XOffset {
			t.Errorf("bar %d offset %v not right of bar %d offset %v", i, bar.XOffset, i-1, l.Bars[i-1].XOffset)
		}
		if bar.Orbital != chem.Orbitals[i] {
			t.Errorf("bar %d is %v, want %v", i, bar.Orbital, chem.Orbitals[i])
		}
	}
}

func TestIndicatorSpansExtremes(t *testing.T) {
	e := mustSplit(t, chem.SquarePlanar, 1.2, 9)
	l, err := Compute(e, panelW, panelH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, bar := range l.Bars {
		minY = math.Min(minY, bar.Y)
		maxY = math.Max(maxY, bar.Y)
	}
	if l.TopY != minY || l.BottomY != maxY {
		t.Errorf("indicator [%v, %v] does not span bar extremes [%v, %v]", l.TopY, l.BottomY, minY, maxY)
	}
	if l.GroundY != panelH-BottomPad {
		t.Errorf("ground line at %v, want %v", l.GroundY, panelH-BottomPad)
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	e := mustSplit(t, chem.Octahedral, 2, 6)
	if _, err := Compute(e, 0, panelH); err == nil {
		t.Error("zero width: expected error")
	}
	if _, err := Compute(e, panelW, -5); err == nil {
		t.Error("negative height: expected error")
	}
	e.Levels[2] = math.NaN()
	if _, err := Compute(e, panelW, panelH); err == nil {
		t.Error("NaN level: expected error")
	}
}
