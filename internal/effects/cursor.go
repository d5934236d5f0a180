package effects

import (
	"math"

	"github.com/san-kum/coreforge/internal/scene"
)

const (
	DefaultRingLerp = 0.1

	DefaultSpotRadius = 600.0
	DefaultSpotPeak   = 0.05
	DefaultSpotFade   = 0.7 // fraction of the radius where the glow reaches zero
)

// Follower is the custom cursor: a dot that snaps to the pointer and a ring
// that trails it.
type Follower struct {
	Dot   scene.Vec2
	Ring  scene.Vec2
	Lerp  float64
	Hover bool

	seen bool
}

func NewFollower() *Follower {
	return &Follower{Lerp: DefaultRingLerp}
}

// Move snaps the dot to the pointer. The first move also places the ring so
// it does not sweep in from the origin.
func (f *Follower) Move(x, y float64) {
	f.Dot = scene.Vec2{X: x, Y: y}
	if !f.seen {
		f.Ring = f.Dot
		f.seen = true
	}
}

// Step moves the ring one frame toward the dot.
func (f *Follower) Step() {
	f.Ring = f.Ring.Lerp(f.Dot, f.Lerp)
}

// SetHover toggles the enlarged ring shown over links and buttons.
func (f *Follower) SetHover(on bool) { f.Hover = on }

// RingRadius is the drawn ring radius in px.
func (f *Follower) RingRadius() float64 {
	if f.Hover {
		return 26
	}
	return 18
}

// Spotlight is the soft radial glow under the pointer.
type Spotlight struct {
	Radius float64
	Peak   float64
	Fade   float64
	Color  scene.Color
}

func NewSpotlight() Spotlight {
	return Spotlight{
		Radius: DefaultSpotRadius,
		Peak:   DefaultSpotPeak,
		Fade:   DefaultSpotFade,
		Color:  scene.RGBA(0, 240, 255, 1),
	}
}

// Alpha returns the glow intensity at (x, y) for a spotlight centred on c.
func (s Spotlight) Alpha(c scene.Vec2, x, y float64) float64 {
	reach := s.Radius * s.Fade
	if reach <= 0 {
		return 0
	}
	d := math.Hypot(x-c.X, y-c.Y)
	if d >= reach {
		return 0
	}
	return s.Peak * (1 - d/reach)
}

// Reach is the distance at which the glow becomes fully transparent.
func (s Spotlight) Reach() float64 { return s.Radius * s.Fade }
