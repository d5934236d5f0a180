package page

import (
	"math"

	"github.com/san-kum/coreforge/internal/scene"
)

var (
	outline = scene.RGBA(0, 240, 255, 0.35)
	accent  = scene.RGBA(0, 240, 255, 0.9)
)

const tiltShift = 1.5 // px of card shift per degree of tilt

// DrawOverlay paints the page furniture that is in view over the field:
// revealed blocks with their skill bars, tilted project cards, the slider
// track and the cursor. Everything is in viewport coordinates.
func (s *Scene) DrawOverlay(surf scene.Surface) {
	view := scene.Rect{X: 0, Y: s.scrollY, W: s.Layout.W, H: s.Layout.H}

	for _, id := range SectionIDs[1:] {
		r, ok := s.Layout.Blocks[id]
		if !ok || !overlaps(r, view) {
			continue
		}
		it, _ := s.Reveal.Item(id)
		if it == nil || !it.Revealed {
			continue
		}
		strokeRect(surf, r.X, r.Y-s.scrollY, r.W, r.H, outline.WithAlpha(0.12))
		for i, b := range it.Bars {
			y := r.Y - s.scrollY + r.H*0.2 + float64(i)*r.H*0.1
			x0 := r.X + r.W*0.3
			surf.StrokeLine(x0, y, x0+r.W*0.6, y, 1, outline.WithAlpha(0.15))
			surf.StrokeLine(x0, y, x0+r.W*0.6*b.Width/100, y, 2, accent)
		}
	}

	for i, r := range s.Layout.Cards {
		if !overlaps(r, view) {
			continue
		}
		t := s.Tilts[i]
		x := r.X + t.RotateY*tiltShift
		y := r.Y - s.scrollY + t.Lift - t.RotateX*tiltShift
		c := outline
		if !t.IsZero() {
			c = accent
		}
		strokeRect(surf, x, y, r.W, r.H, c)
	}

	if sl := s.Layout.Slider; overlaps(sl, view) {
		s.drawSlider(surf, sl.X, sl.Y-s.scrollY, sl.W, sl.H)
	}

	if s.Pointer.Inside {
		drawRing(surf, s.Cursor.Ring.X, s.Cursor.Ring.Y, s.Cursor.RingRadius(), outline.WithAlpha(0.6))
		surf.FillCircle(s.Cursor.Dot.X, s.Cursor.Dot.Y, 2, accent)
	}
}

// drawSlider draws the visible slides, scaled so that Visible slides fill w,
// and one dot per page under the track.
func (s *Scene) drawSlider(surf scene.Surface, x, y, w, h float64) {
	strokeRect(surf, x, y, w, h, outline.WithAlpha(0.2))

	slot := w / float64(s.Slider.Visible())
	from, to := s.Slider.VisibleRange()
	for k := from; k < to; k++ {
		sx := x + float64(k-from)*slot + slot*0.05
		strokeRect(surf, sx, y+h*0.05, slot*0.9, h*0.8, outline)
	}

	dots := s.Slider.Dots()
	gap := 14.0
	dx := x + w/2 - gap*float64(len(dots)-1)/2
	for i, d := range dots {
		c := outline
		r := 2.0
		if d.Active {
			c, r = accent, 3
		}
		surf.FillCircle(dx+float64(i)*gap, y+h*0.93, r, c)
	}
}

func strokeRect(surf scene.Surface, x, y, w, h float64, c scene.Color) {
	surf.StrokeLine(x, y, x+w, y, 1, c)
	surf.StrokeLine(x+w, y, x+w, y+h, 1, c)
	surf.StrokeLine(x+w, y+h, x, y+h, 1, c)
	surf.StrokeLine(x, y+h, x, y, 1, c)
}

func drawRing(surf scene.Surface, cx, cy, r float64, c scene.Color) {
	const segs = 16
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / segs
		a1 := 2 * math.Pi * float64(i+1) / segs
		surf.StrokeLine(cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 1, c)
	}
}

func overlaps(a, b scene.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
