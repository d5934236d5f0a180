package particles

import (
	"math"
	"math/rand"

	"github.com/san-kum/coreforge/internal/scene"
)

const (
	DefaultCount         = 70
	DefaultSpeed         = 0.15
	DefaultRepelRadius   = 90.0
	DefaultLinkRadius    = 130.0
	DefaultLinkAlpha     = 0.07
	DefaultRadius        = 1.0
	DefaultLineWidth     = 0.5
	DefaultAlphaMin      = 0.05
	DefaultAlphaSpan     = 0.22
	DefaultGridThreshold = 400
)

// Params tunes a Field. The zero value is not usable, start from DefaultParams.
type Params struct {
	Count       int
	Speed       float64 // max |v| per axis, per frame
	RepelRadius float64
	LinkRadius  float64
	LinkAlpha   float64 // link alpha at distance 0
	Radius      float64
	LineWidth   float64
	AlphaMin    float64
	AlphaSpan   float64
	// GridThreshold switches the link pass to a bucket grid at this many
	// particles. Zero or negative keeps the pairwise pass.
	GridThreshold int
	Color         scene.Color
}

func DefaultParams() Params {
	return Params{
		Count:         DefaultCount,
		Speed:         DefaultSpeed,
		RepelRadius:   DefaultRepelRadius,
		LinkRadius:    DefaultLinkRadius,
		LinkAlpha:     DefaultLinkAlpha,
		Radius:        DefaultRadius,
		LineWidth:     DefaultLineWidth,
		AlphaMin:      DefaultAlphaMin,
		AlphaSpan:     DefaultAlphaSpan,
		GridThreshold: DefaultGridThreshold,
		Color:         scene.RGBA(0, 240, 255, 1),
	}
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
}

// FrameStats summarizes one Step and the Render that followed it.
type FrameStats struct {
	Resets    int
	Repelled  int
	Links     int
	MeanAlpha float64
}

// Field owns the ambient particle background. The pointer is read, never
// written.
type Field struct {
	params    Params
	rng       *rand.Rand
	pointer   *scene.Pointer
	w, h      float64
	particles []Particle
	grid      grid
	last      FrameStats
}

// New creates an empty field. Call Initialize before stepping.
func New(p Params, pointer *scene.Pointer, rng *rand.Rand) *Field {
	if p.Count < 0 {
		p.Count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Field{params: p, rng: rng, pointer: pointer}
}

// Initialize replaces every particle with a fresh batch of Count particles
// scattered over [0,w)x[0,h).
func (f *Field) Initialize(w, h float64) {
	f.w, f.h = math.Max(w, 0), math.Max(h, 0)
	f.particles = make([]Particle, f.params.Count)
	for i := range f.particles {
		f.reset(&f.particles[i])
	}
	f.last = FrameStats{}
}

// Resize discards the old batch. Particles are not rescaled.
func (f *Field) Resize(w, h float64) { f.Initialize(w, h) }

func (f *Field) reset(p *Particle) {
	p.X = f.rng.Float64() * f.w
	p.Y = f.rng.Float64() * f.h
	p.VX = (f.rng.Float64() - 0.5) * 2 * f.params.Speed
	p.VY = (f.rng.Float64() - 0.5) * 2 * f.params.Speed
	p.Alpha = f.rng.Float64()*f.params.AlphaSpan + f.params.AlphaMin
}

// Step advances one frame: drift, reset on leaving the bounds, then the
// repulsion impulse away from the pointer. A particle reset in this frame is
// still repelled, measured from its new position.
func (f *Field) Step() FrameStats {
	var st FrameStats
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > f.w || p.Y < 0 || p.Y > f.h {
			f.reset(p)
			st.Resets++
		}
		if f.repel(p) {
			st.Repelled++
		}
		st.MeanAlpha += p.Alpha
	}
	if n := len(f.particles); n > 0 {
		st.MeanAlpha /= float64(n)
	}
	f.last = st
	return st
}

func (f *Field) repel(p *Particle) bool {
	if f.pointer == nil {
		return false
	}
	dx := p.X - f.pointer.X
	dy := p.Y - f.pointer.Y
	d := math.Hypot(dx, dy)
	// d == 0 has no direction; the particle stays put this frame.
	if d == 0 || d >= f.params.RepelRadius {
		return false
	}
	// The nudge may cross an edge; keep it on the surface so the bounds hold
	// after every step. Drift resets remain the only respawn path.
	p.X = clamp(p.X+dx/d, 0, f.w)
	p.Y = clamp(p.Y+dy/d, 0, f.h)
	return true
}

// Render draws the particles, then every link shorter than LinkRadius.
// It returns the number of links drawn.
func (f *Field) Render(s scene.Surface) int {
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, f.params.Radius, f.params.Color.WithAlpha(p.Alpha))
	}
	links := 0
	f.ForEachLink(func(a, b Particle, d float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.params.LineWidth, f.params.Color.WithAlpha(f.LinkAlpha(d)))
		links++
	})
	f.last.Links = links
	return links
}

// ForEachLink calls fn once per unordered connected pair.
func (f *Field) ForEachLink(fn func(a, b Particle, d float64)) {
	if f.params.GridThreshold > 0 && len(f.particles) >= f.params.GridThreshold {
		f.grid.rebuild(f.particles, f.w, f.h, f.params.LinkRadius)
		f.grid.pairs(f.particles, f.params.LinkRadius, fn)
		return
	}
	// O(N^2): ~2.4k distance checks per frame at the default 70 particles.
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := f.particles[i], f.particles[j]
			if d := Distance(a, b); d < f.params.LinkRadius {
				fn(a, b, d)
			}
		}
	}
}

// Connected reports whether a and b are close enough to be linked.
func (f *Field) Connected(a, b Particle) bool {
	return Distance(a, b) < f.params.LinkRadius
}

// LinkAlpha fades linearly from LinkAlpha at distance 0 to zero at LinkRadius.
func (f *Field) LinkAlpha(d float64) float64 {
	if d >= f.params.LinkRadius {
		return 0
	}
	return f.params.LinkAlpha * (1 - d/f.params.LinkRadius)
}

func Distance(a, b Particle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Particles returns a copy of the current batch.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Size() (w, h float64) { return f.w, f.h }

func (f *Field) Params() Params { return f.params }

// Last returns the stats of the most recent Step and Render.
func (f *Field) Last() FrameStats { return f.last }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
