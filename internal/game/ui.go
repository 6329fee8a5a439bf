package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// slider is a horizontal drag control bound to a float parameter.
type slider struct {
	x, y, w, h int
	label      string
	hovered    bool
	dragging   bool
}

// update applies mouse state to the bound value and reports whether the
// value changed this frame.
func (s *slider) update(mx, my int, justPressed, justReleased bool, v *float64, min, max float64) bool {
	s.hovered = mx >= s.x && mx <= s.x+s.w && my >= s.y-4 && my <= s.y+s.h+4
	if s.hovered && justPressed {
		s.dragging = true
	}
	if justReleased {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}
	t := clamp01(float64(mx-s.x) / float64(s.w))
	nv := min + t*(max-min)
	if math.Abs(nv-*v) < 1e-9 {
		return false
	}
	*v = nv
	return true
}

func (s *slider) contains(mx, my int) bool {
	return mx >= s.x && mx <= s.x+s.w && my >= s.y-4 && my <= s.y+s.h+4
}

func (s *slider) draw(screen *ebiten.Image, v, min, max float64) {
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), color.RGBA{R: 25, G: 30, B: 40, A: 220}, false)
	vector.StrokeRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), 1, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	t := clamp01((v - min) / (max - min))
	fill := t * float64(s.w)
	fillColor := color.RGBA{R: 80, G: 130, B: 200, A: 200}
	if s.hovered || s.dragging {
		fillColor = color.RGBA{R: 100, G: 150, B: 230, A: 230}
	}
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(fill), float32(s.h), fillColor, false)
	vector.DrawFilledCircle(screen, float32(float64(s.x)+fill), float32(s.y+s.h/2), float32(s.h)/2+3, color.RGBA{R: 230, G: 235, B: 245, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.2f", s.label, v), s.x, s.y-18)
}

// button is a simple click target drawn in three states.
type button struct {
	x, y, w, h int
	label      string
	hovered    bool
	pressed    bool
}

// update reports a completed click (press and release inside the
// button).
func (b *button) update(mx, my int, justPressed, justReleased bool) bool {
	b.hovered = mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

func (b *button) draw(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 6
	ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-14)/2)
}
