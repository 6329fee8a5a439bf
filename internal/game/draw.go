package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"crystalviz/internal/chem"
	"crystalviz/internal/config"
	"crystalviz/internal/diagram"
	"crystalviz/internal/scene"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	scene.Render(&scene.EbitenCanvas{Dst: screen}, g.buildScene(), g.cam,
		float64(g.viewportW()), float64(g.settings.WindowHeight))

	g.drawDiagram(screen)
	g.drawControls(screen)

	status := fmt.Sprintf("%s | %s (strength %g) | d=%.2f | splitting %.3f",
		g.geometry, g.ligand().Name, g.ligand().Strength, g.distance, g.energies.Splitting)
	if g.lastErr != nil {
		status += " | error: " + g.lastErr.Error()
	}
	if msg := g.exportStatus(); msg != "" {
		status += " | " + msg
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen,
		"[G]eometry  [L/K] ligand  [1-5] show orbital  [Tab] select  [S]ound  [E]xport  [R]eset view  drag: orbit  wheel: zoom",
		12, 26)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w := float64(g.settings.WindowWidth)
	h := g.settings.WindowHeight
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		r := uint8(10 + 8*math.Sin(ratio*math.Pi))
		gv := uint8(12 + 6*ratio)
		b := uint8(22 + 14*ratio)
		ebitenutil.DrawLine(screen, 0, float64(y), w, float64(y), color.RGBA{R: r, G: gv, B: b, A: 255})
	}
}

func (g *Game) drawDiagram(screen *ebiten.Image) {
	x0 := float64(g.viewportW())
	pw := float64(config.DiagramPanelWidth)
	h := float64(g.settings.WindowHeight)

	vector.DrawFilledRect(screen, float32(x0), 0, float32(pw), float32(h), color.RGBA{R: 16, G: 19, B: 28, A: 245}, false)
	vector.StrokeLine(screen, float32(x0), 0, float32(x0), float32(h), 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Energy levels (%s)", g.geometry), int(x0)+16, 14)

	// vertical energy axis with arrowhead
	ax := x0 + 36
	top := diagram.TopPad - 16
	axisColor := color.RGBA{R: 120, G: 130, B: 150, A: 255}
	vector.StrokeLine(screen, float32(ax), float32(top), float32(ax), float32(g.layout.GroundY+8), 1, axisColor, false)
	vector.StrokeLine(screen, float32(ax), float32(top), float32(ax-4), float32(top+8), 1, axisColor, false)
	vector.StrokeLine(screen, float32(ax), float32(top), float32(ax+4), float32(top+8), 1, axisColor, false)
	ebitenutil.DebugPrintAt(screen, "E", int(ax)-14, int(top))

	// dashed ground-state reference line
	groundColor := color.RGBA{R: 100, G: 110, B: 130, A: 200}
	for x := ax + 8; x < x0+pw-24; x += 12 {
		vector.StrokeLine(screen, float32(x), float32(g.layout.GroundY), float32(x+6), float32(g.layout.GroundY), 1, groundColor, false)
	}
	ebitenutil.DebugPrintAt(screen, "ground state", int(x0+pw)-110, int(g.layout.GroundY)+6)

	for _, bar := range g.layout.Bars {
		cx := x0 + pw/2 + bar.XOffset
		col := g.orbitalColor(bar.Orbital)
		col.A = 255
		vector.StrokeLine(screen, float32(cx-26), float32(bar.Y), float32(cx+26), float32(bar.Y), 3, col, false)
		ebitenutil.DebugPrintAt(screen, bar.Label, int(cx)-20, int(bar.Y)+4)
	}

	// splitting magnitude indicator
	if g.layout.BottomY-g.layout.TopY > 1 {
		ix := x0 + pw - 44
		ind := color.RGBA{R: 230, G: 235, B: 245, A: 255}
		vector.StrokeLine(screen, float32(ix), float32(g.layout.TopY), float32(ix), float32(g.layout.BottomY), 2, ind, false)
		vector.StrokeLine(screen, float32(ix-5), float32(g.layout.TopY), float32(ix+5), float32(g.layout.TopY), 2, ind, false)
		vector.StrokeLine(screen, float32(ix-5), float32(g.layout.BottomY), float32(ix+5), float32(g.layout.BottomY), 2, ind, false)
		mid := (g.layout.TopY + g.layout.BottomY) / 2
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.3f", g.energies.Splitting), int(ix)-46, int(mid)-7)
	}
}

func (g *Game) drawControls(screen *ebiten.Image) {
	g.distSlider.draw(screen, g.distance, config.DistanceMin, config.DistanceMax)
	g.scaleSlider.label = "scale " + chem.Orbitals[g.selected].Label()
	g.scaleSlider.draw(screen, g.scales[g.selected], config.ScaleMin, config.ScaleMax)
	g.exportBtn.draw(screen)

	// orbital legend with visibility and selection markers
	y := g.settings.WindowHeight - 104
	for i, o := range chem.Orbitals {
		x := 20 + i*118
		dot := g.orbitalColor(o)
		if !g.visible[i] {
			dot.A = 70
		} else {
			dot.A = 255
		}
		vector.DrawFilledCircle(screen, float32(x+6), float32(y+8), 6, dot, false)
		marker := " "
		if i == g.selected {
			marker = "*"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%s %s", marker, o.Label(), onOff(g.visible[i])), x+16, y)
	}
}
