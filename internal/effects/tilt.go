package effects

import "github.com/san-kum/coreforge/internal/scene"

const (
	TiltSpan = 14.0  // degrees from edge to edge
	TiltLift = -10.0 // px
)

// Tilt is the 3D transform of a hovered project card.
type Tilt struct {
	RotateX float64
	RotateY float64
	Lift    float64
}

// TiltAt returns the card transform for a pointer at (x, y). A pointer
// outside the card gives the zero transform.
func TiltAt(card scene.Rect, x, y float64) Tilt {
	if card.W <= 0 || card.H <= 0 || !card.Contains(x, y) {
		return Tilt{}
	}
	return Tilt{
		RotateY: ((x-card.X)/card.W - 0.5) * TiltSpan,
		RotateX: -((y-card.Y)/card.H - 0.5) * TiltSpan,
		Lift:    TiltLift,
	}
}

func (t Tilt) IsZero() bool { return t == Tilt{} }
