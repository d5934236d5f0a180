package scene

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp moves v toward target by fraction t.
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{v.X + (target.X-v.X)*t, v.Y + (target.Y-v.Y)*t}
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Color is a straight (non premultiplied) RGB color with alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Alpha8 returns the alpha scaled to a byte.
func (c Color) Alpha8() uint8 {
	return uint8(math.Round(clamp01(c.A) * 255))
}

// Surface is the drawable target of a frame. Coordinates are page pixels.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Pointer is the last known pointer position. It starts at the origin, like
// a page that has not seen a mouse move yet.
type Pointer struct {
	X, Y   float64
	Inside bool
}

func (p *Pointer) MoveTo(x, y float64) {
	p.X, p.Y = x, y
	p.Inside = true
}

// Leave marks the pointer as outside the surface. The last position is kept.
func (p *Pointer) Leave() { p.Inside = false }

func (p *Pointer) Pos() Vec2 { return Vec2{p.X, p.Y} }

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
