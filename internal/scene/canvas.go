package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface the renderer targets. The live view
// draws onto an ebiten image; GIF export draws onto an image.RGBA with
// the same calls.
type Canvas interface {
	FillCircle(x, y, r float32, c color.RGBA)
	Line(x1, y1, x2, y2, width float32, c color.RGBA)
	// Label prints small text at a pixel position. Offline canvases may
	// ignore it.
	Label(x, y int, text string)
}

// EbitenCanvas draws with the ebiten vector package.
type EbitenCanvas struct {
	Dst *ebiten.Image
}

func (e *EbitenCanvas) FillCircle(x, y, r float32, c color.RGBA) {
	vector.DrawFilledCircle(e.Dst, x, y, r, c, false)
}

func (e *EbitenCanvas) Line(x1, y1, x2, y2, width float32, c color.RGBA) {
	vector.StrokeLine(e.Dst, x1, y1, x2, y2, width, c, false)
}

func (e *EbitenCanvas) Label(x, y int, text string) {
	ebitenutil.DebugPrintAt(e.Dst, text, x, y)
}

// ImageCanvas is a minimal software rasterizer over an image.RGBA,
// used by the GIF exporter.
type ImageCanvas struct {
	Img *image.RGBA
}

func (ic *ImageCanvas) FillCircle(x, y, r float32, c color.RGBA) {
	cx, cy, rr := float64(x), float64(y), float64(r)
	x0, x1 := int(cx-rr)-1, int(cx+rr)+1
	y0, y1 := int(cy-rr)-1, int(cy+rr)+1
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx, dy := float64(px)-cx, float64(py)-cy
			if dx*dx+dy*dy <= rr*rr {
				ic.blend(px, py, c)
			}
		}
	}
}

func (ic *ImageCanvas) Line(x1, y1, x2, y2, width float32, c color.RGBA) {
	dx, dy := float64(x2-x1), float64(y2-y1)
	length := math.Hypot(dx, dy)
	steps := int(length) + 1
	half := float64(width) / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := float64(x1) + dx*t
		py := float64(y1) + dy*t
		if half <= 0.75 {
			ic.blend(int(px), int(py), c)
			continue
		}
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				ic.blend(int(px+ox), int(py+oy), c)
			}
		}
	}
}

func (ic *ImageCanvas) Label(x, y int, text string) {}

// blend does source-over alpha blending of c onto the pixel.
func (ic *ImageCanvas) blend(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(ic.Img.Rect) {
		return
	}
	if c.A == 0xff {
		ic.Img.SetRGBA(x, y, c)
		return
	}
	dst := ic.Img.RGBAAt(x, y)
	a := uint32(c.A)
	ia := 255 - a
	ic.Img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*ia) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*ia) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*ia) / 255),
		A: 0xff,
	})
}
