package page

import (
	"context"
	"math/rand"
	"time"

	"github.com/san-kum/coreforge/internal/carousel"
	"github.com/san-kum/coreforge/internal/clock"
	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/effects"
	"github.com/san-kum/coreforge/internal/particles"
	"github.com/san-kum/coreforge/internal/scene"
)

const historyLen = 240

// Scene owns every piece of page state. Frontends feed it input and the
// frame clock, then draw from it. It is not safe for concurrent use; all
// calls belong on the frontend's frame loop.
type Scene struct {
	Pointer *scene.Pointer
	Field   *particles.Field
	Slider  *carousel.Controller
	Clock   *clock.Scheduler
	Cursor  *effects.Follower
	Spot    effects.Spotlight
	Typer   *effects.Typer
	Reveal  *effects.Revealer
	Form    *contact.Form

	Slides []config.Slide
	Layout Layout
	Nav    effects.Nav
	Tilts  []effects.Tilt

	typed   string
	scrollY float64
	frame   int
	history []float64
	visible int
	slideW  float64
}

// New builds a scene from cfg. form may be nil when the frontend has no
// contact section.
func New(cfg *config.Config, form *contact.Form) *Scene {
	ptr := &scene.Pointer{}
	sched := clock.NewScheduler()
	opts := cfg.Carousel.Options()

	s := &Scene{
		Pointer: ptr,
		Field:   particles.New(cfg.Particles.Params(), ptr, rand.New(rand.NewSource(cfg.Seed))),
		Slider:  carousel.New(len(cfg.Carousel.Slides), opts, sched),
		Clock:   sched,
		Cursor:  effects.NewFollower(),
		Spot:    effects.NewSpotlight(),
		Typer:   effects.NewTyper(cfg.Typing.Roles, cfg.Typing.Options()),
		Reveal:  effects.NewRevealer(),
		Form:    form,
		Slides:  cfg.Carousel.Slides,
		visible: opts.Visible,
		slideW:  opts.SlideWidth,
	}

	for _, id := range SectionIDs[1:] {
		if id == "skills" {
			bars := make([]effects.Bar, len(DefaultSkills))
			for i, sk := range DefaultSkills {
				bars[i] = effects.Bar{Name: sk.Name, Target: sk.Percent}
			}
			s.Reveal.Observe(id, bars...)
			continue
		}
		s.Reveal.Observe(id)
	}
	return s
}

// Resize lays the page out for a w x h viewport and reseeds the field.
func (s *Scene) Resize(w, h float64) {
	s.Field.Resize(w, h)
	s.Layout = NewLayout(w, h, s.visible, s.slideW)
	s.Tilts = make([]effects.Tilt, len(s.Layout.Cards))
	s.ScrollTo(s.scrollY)
}

// MovePointer takes viewport coordinates.
func (s *Scene) MovePointer(x, y float64) {
	s.Pointer.MoveTo(x, y)
	s.Cursor.Move(x, y)
	s.hitTest(x, y)
}

// hitTest re-evaluates slider hover and card tilt for a pointer at viewport
// (x, y). Scrolling moves the page under a still pointer, so ScrollTo runs it
// too.
func (s *Scene) hitTest(x, y float64) {
	dy := y + s.scrollY
	overSlider := s.Layout.Slider.Contains(x, dy)
	s.Slider.Hover(overSlider)

	overCard := false
	for i, r := range s.Layout.Cards {
		s.Tilts[i] = effects.TiltAt(r, x, dy)
		if !s.Tilts[i].IsZero() {
			overCard = true
		}
	}
	s.Cursor.SetHover(overSlider || overCard)
}

// LeavePointer is called when the pointer exits the window.
func (s *Scene) LeavePointer() {
	s.Pointer.Leave()
	s.Slider.Hover(false)
	s.Cursor.SetHover(false)
	for i := range s.Tilts {
		s.Tilts[i] = effects.Tilt{}
	}
}

// Scroll moves the viewport by dy document pixels.
func (s *Scene) Scroll(dy float64) { s.ScrollTo(s.scrollY + dy) }

func (s *Scene) ScrollTo(y float64) {
	if y > s.Layout.MaxScroll() {
		y = s.Layout.MaxScroll()
	}
	if y < 0 {
		y = 0
	}
	s.scrollY = y
	s.Nav = effects.Track(y, s.Layout.DocHeight(), s.Layout.H, s.Layout.Sections)
	s.reveal()
	if s.Pointer.Inside {
		s.hitTest(s.Pointer.X, s.Pointer.Y)
	}
}

// JumpTo scrolls a section to the top of the viewport.
func (s *Scene) JumpTo(id string) { s.ScrollTo(s.Layout.Top(id)) }

func (s *Scene) reveal() {
	view := scene.Rect{X: 0, Y: s.scrollY, W: s.Layout.W, H: s.Layout.H}
	for id, r := range s.Layout.Blocks {
		s.Reveal.Intersect(id, effects.VisibleRatio(r, view))
	}
}

// Frame advances every animation by dt: timers, particles, cursor and text.
func (s *Scene) Frame(dt time.Duration) particles.FrameStats {
	s.Clock.Advance(dt)
	st := s.Field.Step()
	s.Cursor.Step()
	s.typed = s.Typer.Advance(dt)
	s.frame++
	return st
}

// Draw clears surf and paints the field. It returns the number of links.
func (s *Scene) Draw(surf scene.Surface) int {
	surf.Clear()
	links := s.Field.Render(surf)
	s.history = append(s.history, float64(links))
	if len(s.history) > historyLen {
		s.history = s.history[len(s.history)-historyLen:]
	}
	return links
}

// Submit sends the contact form. Without a form every submission fails
// with contact.ErrOpen.
func (s *Scene) Submit(ctx context.Context, p contact.Params) (contact.Result, error) {
	if s.Form == nil {
		return contact.Result{}, contact.ErrOpen
	}
	return s.Form.Submit(ctx, p)
}

func (s *Scene) Typed() string { return s.typed }

func (s *Scene) ScrollY() float64 { return s.scrollY }

func (s *Scene) FrameCount() int { return s.frame }

// LinkHistory returns the link counts of recent drawn frames.
func (s *Scene) LinkHistory() []float64 { return s.history }

// SpotAlpha is the spotlight intensity at viewport point (x, y). It is zero
// while the pointer is outside.
func (s *Scene) SpotAlpha(x, y float64) float64 {
	if !s.Pointer.Inside {
		return 0
	}
	return s.Spot.Alpha(s.Pointer.Pos(), x, y)
}
