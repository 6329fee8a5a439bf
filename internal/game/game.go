// Package game owns the UI state of the visualizer: the parameter
// tuple (geometry, distance, ligand, per-orbital visibility and scale),
// the camera, and the derived positions, energies and meshes that are
// rebuilt whenever a parameter changes.
package game

import (
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"crystalviz/internal/chem"
	"crystalviz/internal/config"
	"crystalviz/internal/diagram"
	"crystalviz/internal/export"
	"crystalviz/internal/logutil"
	"crystalviz/internal/scene"
	"crystalviz/internal/sonify"
	"crystalviz/internal/vmath"
)

// orbitalHues fixes the per-orbital display hue, indexed by chem.Orbital.
var orbitalHues = [5]float64{210, 0, 130, 35, 280}

type Game struct {
	settings config.Settings

	// parameter tuple
	geometry  chem.Geometry
	distance  float64
	ligandIdx int
	visible   [5]bool
	scales    [5]float64
	selected  int

	// derived state, rebuilt by recompute
	energies  chem.EnergyResult
	layout    diagram.Layout
	positions []vmath.Vec3
	surfaces  [5]*chem.Surface

	cam            scene.Camera
	dragging       bool
	lastMX, lastMY int

	prevKey map[ebiten.Key]bool

	distSlider  slider
	scaleSlider slider
	exportBtn   button

	exportMu  sync.Mutex
	exporting bool
	exportMsg string

	son     *sonify.Player
	lastErr error
}

func New(settings config.Settings) (*Game, error) {
	g := &Game{
		settings:  settings,
		geometry:  chem.Octahedral,
		distance:  2.0,
		ligandIdx: 5, // H₂O, middle of the series
		scales:    [5]float64{1, 1, 1, 1, 1},
		visible:   [5]bool{true, true, false, false, false},
		cam:       scene.DefaultCamera(),
		prevKey:   map[ebiten.Key]bool{},
		son:       sonify.NewPlayer(settings.Sonify),
	}
	h := settings.WindowHeight
	g.distSlider = slider{x: 20, y: h - 56, w: config.SliderWidth, h: config.SliderHeight, label: "distance"}
	g.scaleSlider = slider{x: 20 + config.SliderWidth + 60, y: h - 56, w: config.SliderWidth, h: config.SliderHeight}
	g.exportBtn = button{x: 20, y: 44, w: config.ButtonWidth, h: config.ButtonHeight, label: "Export GIF"}

	if err := g.recompute(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) viewportW() int {
	return g.settings.WindowWidth - config.DiagramPanelWidth
}

func (g *Game) ligand() chem.Ligand {
	return chem.Catalog[g.ligandIdx]
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.WindowWidth, g.settings.WindowHeight
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	changed := false

	if justPressed(ebiten.KeyG) {
		g.geometry = chem.Geometries[(int(g.geometry)+1)%len(chem.Geometries)]
		changed = true
	}
	if justPressed(ebiten.KeyL) {
		g.ligandIdx = (g.ligandIdx + 1) % len(chem.Catalog)
		changed = true
	}
	if justPressed(ebiten.KeyK) {
		g.ligandIdx = (g.ligandIdx + len(chem.Catalog) - 1) % len(chem.Catalog)
		changed = true
	}
	if justPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(chem.Orbitals)
	}
	for i, k := range [5]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5} {
		if justPressed(k) {
			g.visible[i] = !g.visible[i]
			changed = true
		}
	}
	if justPressed(ebiten.KeyS) {
		logutil.Infof("sonification %v", onOff(g.son.Toggle()))
	}
	if justPressed(ebiten.KeyR) {
		g.cam = scene.DefaultCamera()
	}
	if justPressed(ebiten.KeyE) {
		g.startExport()
	}

	mx, my := ebiten.CursorPosition()
	mbJustPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mbJustReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.distSlider.update(mx, my, mbJustPressed, mbJustReleased, &g.distance, config.DistanceMin, config.DistanceMax) {
		changed = true
	}
	sv := g.scales[g.selected]
	if g.scaleSlider.update(mx, my, mbJustPressed, mbJustReleased, &sv, config.ScaleMin, config.ScaleMax) {
		g.scales[g.selected] = sv
		changed = true
	}
	if g.exportBtn.update(mx, my, mbJustPressed, mbJustReleased) {
		g.startExport()
	}

	g.updateCamera(mx, my, mbJustPressed, mbJustReleased)

	if changed {
		g.applyChange()
	}
	return nil
}

func (g *Game) updateCamera(mx, my int, mbJustPressed, mbJustReleased bool) {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom -= wy * 0.6
		if g.cam.Zoom < config.CameraZoomMin {
			g.cam.Zoom = config.CameraZoomMin
		}
		if g.cam.Zoom > config.CameraZoomMax {
			g.cam.Zoom = config.CameraZoomMax
		}
	}

	overControl := g.distSlider.contains(mx, my) || g.scaleSlider.contains(mx, my) || g.exportBtn.contains(mx, my)
	if mbJustPressed && mx < g.viewportW() && !overControl {
		g.dragging = true
		g.lastMX, g.lastMY = mx, my
	}
	if mbJustReleased {
		g.dragging = false
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.Yaw += float64(mx-g.lastMX) * config.CameraDragGain
		g.cam.Pitch += float64(my-g.lastMY) * config.CameraDragGain
		// keep away from the poles so the view never flips
		if g.cam.Pitch > 1.45 {
			g.cam.Pitch = 1.45
		}
		if g.cam.Pitch < -1.45 {
			g.cam.Pitch = -1.45
		}
		g.lastMX, g.lastMY = mx, my
	}
}

// applyChange recomputes derived state and sounds the splitting blip.
// On error the previous valid state stays on screen.
func (g *Game) applyChange() {
	prev := g.energies.Splitting
	if err := g.recompute(); err != nil {
		g.lastErr = err
		logutil.Errorf("recompute: %v", err)
		return
	}
	g.lastErr = nil
	if d := g.energies.Splitting - prev; d > 1e-12 || d < -1e-12 {
		g.son.PlaySplitting(g.energies.Splitting)
	}
}

// recompute rebuilds positions, energies, diagram layout and visible
// orbital meshes from the parameter tuple. All-or-nothing: state is
// only assigned once every computation succeeded.
func (g *Game) recompute() error {
	strength := g.ligand().Strength

	positions, err := chem.LigandPositions(g.geometry, g.distance)
	if err != nil {
		return err
	}
	energies, err := chem.CalculateSplitting(g.geometry, g.distance, strength)
	if err != nil {
		return err
	}
	layout, err := diagram.Compute(energies, config.DiagramPanelWidth, float64(g.settings.WindowHeight))
	if err != nil {
		return err
	}
	var surfaces [5]*chem.Surface
	for i, o := range chem.Orbitals {
		if !g.visible[i] {
			continue
		}
		s, err := chem.GenerateOrbitalSurface(o, g.scales[i], g.settings.MeshResolution)
		if err != nil {
			return err
		}
		surfaces[i] = s
	}

	g.positions = positions
	g.energies = energies
	g.layout = layout
	g.surfaces = surfaces
	logutil.Debugf("recompute: %s d=%.2f %s -> splitting %.4f",
		g.geometry, g.distance, g.ligand().Name, energies.Splitting)
	return nil
}

// orbitalColor is the draw color for one orbital's lobes. Opacity grows
// as the ligands close in, mirroring the stronger field.
func (g *Game) orbitalColor(o chem.Orbital) color.RGBA {
	r, gr, b := hsvToRgb(orbitalHues[o], 0.65, 0.95)
	t := clamp01((config.DistanceMax - g.distance) / (config.DistanceMax - config.DistanceMin))
	return color.RGBA{R: r, G: gr, B: b, A: uint8(255 * (0.35 + 0.6*t))}
}

// buildScene assembles the 3D viewport contents for the current state.
func (g *Game) buildScene() scene.Scene {
	s := scene.Scene{
		ShowAxes: true,
		AxisLen:  g.distance + 1.5,
	}
	s.Spheres = append(s.Spheres, scene.Sphere{
		Radius: 0.45,
		Color:  color.RGBA{R: 205, G: 210, B: 220, A: 255},
	})
	lig := g.ligand()
	for _, p := range g.positions {
		s.Bonds = append(s.Bonds, scene.Bond{
			To:    p,
			Width: 2,
			Color: color.RGBA{R: 90, G: 100, B: 120, A: 255},
		})
		s.Spheres = append(s.Spheres, scene.Sphere{
			Center: p,
			Radius: 0.3,
			Color:  lig.Color,
		})
	}
	for i, o := range chem.Orbitals {
		if g.surfaces[i] == nil {
			continue
		}
		s.Meshes = append(s.Meshes, scene.Mesh{Surface: g.surfaces[i], Color: g.orbitalColor(o)})
	}
	return s
}

func (g *Game) startExport() {
	g.exportMu.Lock()
	if g.exporting {
		g.exportMu.Unlock()
		return
	}
	g.exporting = true
	g.exportMsg = "exporting..."
	g.exportMu.Unlock()

	sc := g.buildScene()
	cam := g.cam
	go func() {
		msg := ""
		defer func() {
			g.exportMu.Lock()
			g.exporting = false
			g.exportMsg = msg
			g.exportMu.Unlock()
		}()

		path, err := zenity.SelectFileSave(
			zenity.Title("Export rotating GIF"),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "GIF",
				Patterns: []string{"*.gif"},
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				msg = "export failed: " + err.Error()
				logutil.Errorf("export dialog: %v", err)
			}
			return
		}
		if err := export.RotatingGIF(path, sc, cam, config.ExportSize, config.ExportFrames, config.ExportFrameDelay); err != nil {
			msg = "export failed: " + err.Error()
			logutil.Errorf("%v", err)
			return
		}
		msg = "saved " + path
	}()
}

func (g *Game) exportStatus() string {
	g.exportMu.Lock()
	defer g.exportMu.Unlock()
	return g.exportMsg
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
