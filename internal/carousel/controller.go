package carousel

import (
	"time"

	"github.com/san-kum/coreforge/internal/clock"
)

const (
	DefaultVisible    = 3
	DefaultSlideWidth = 320.0 // card width plus gap, px
	DefaultInterval   = 3500 * time.Millisecond
)

type Options struct {
	Visible    int
	SlideWidth float64
	Interval   time.Duration
}

func DefaultOptions() Options {
	return Options{
		Visible:    DefaultVisible,
		SlideWidth: DefaultSlideWidth,
		Interval:   DefaultInterval,
	}
}

// Dot is one page indicator. Activating it jumps to Target.
type Dot struct {
	Page   int
	Target int
	Active bool
}

// Controller scrolls a fixed track of slides, Visible at a time.
//
// Manual moves (GoTo, Next, Prev, dots) clamp to [0, total-visible].
// AutoAdvance wraps back to 0 instead.
type Controller struct {
	total      int
	visible    int
	slideWidth float64
	interval   time.Duration

	current int
	dots    []Dot

	sched   *clock.Scheduler
	timer   *clock.Timer
	hovered bool

	onChange func(current int)
}

// New builds the dots and starts auto-advance on sched. A nil scheduler
// gives a carousel without auto-advance.
func New(total int, opts Options, sched *clock.Scheduler) *Controller {
	if total < 0 {
		total = 0
	}
	if opts.Visible <= 0 {
		opts.Visible = DefaultVisible
	}
	if opts.SlideWidth <= 0 {
		opts.SlideWidth = DefaultSlideWidth
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	c := &Controller{
		total:      total,
		visible:    opts.Visible,
		slideWidth: opts.SlideWidth,
		interval:   opts.Interval,
		sched:      sched,
	}

	pages := (total + c.visible - 1) / c.visible
	c.dots = make([]Dot, pages)
	for i := range c.dots {
		c.dots[i] = Dot{Page: i, Target: i * c.visible}
	}
	c.syncDots()
	c.Resume()
	return c
}

// MaxIndex is the last valid offset. Tracks shorter than a page pin to 0.
func (c *Controller) MaxIndex() int {
	if m := c.total - c.visible; m > 0 {
		return m
	}
	return 0
}

func (c *Controller) GoTo(idx int) {
	if idx > c.MaxIndex() {
		idx = c.MaxIndex()
	}
	if idx < 0 {
		idx = 0
	}
	c.current = idx
	c.syncDots()
	if c.onChange != nil {
		c.onChange(c.current)
	}
}

func (c *Controller) Next() { c.GoTo(c.current + 1) }

func (c *Controller) Prev() { c.GoTo(c.current - 1) }

func (c *Controller) AutoAdvance() {
	next := c.current + 1
	if next > c.MaxIndex() {
		next = 0
	}
	c.GoTo(next)
}

// Activate jumps to the first slide of page.
func (c *Controller) Activate(page int) {
	if page < 0 || page >= len(c.dots) {
		return
	}
	c.GoTo(c.dots[page].Target)
}

// Pause stops auto-advance. Safe to call repeatedly.
func (c *Controller) Pause() {
	c.timer.Stop()
	c.timer = nil
}

// Resume restarts auto-advance from a full interval. Any running timer is
// cancelled first, so there is never more than one.
func (c *Controller) Resume() {
	c.Pause()
	if c.sched == nil {
		return
	}
	c.timer = c.sched.Every(c.interval, c.AutoAdvance)
}

// Hover feeds the pointer-inside state of the slider area. Entering pauses,
// leaving resumes; repeated reports of the same state do nothing.
func (c *Controller) Hover(inside bool) {
	if inside == c.hovered {
		return
	}
	c.hovered = inside
	if inside {
		c.Pause()
	} else {
		c.Resume()
	}
}

func (c *Controller) syncDots() {
	active := c.ActivePage()
	for i := range c.dots {
		c.dots[i].Active = i == active
	}
}

// OnChange registers a callback run after every GoTo.
func (c *Controller) OnChange(fn func(current int)) { c.onChange = fn }

func (c *Controller) Current() int { return c.current }

// ActivePage is the index of the highlighted dot.
func (c *Controller) ActivePage() int { return c.current / c.visible }

func (c *Controller) PageCount() int { return len(c.dots) }

func (c *Controller) Dots() []Dot {
	out := make([]Dot, len(c.dots))
	copy(out, c.dots)
	return out
}

// Offset is the track translation in px; the track is drawn at -Offset.
func (c *Controller) Offset() float64 { return float64(c.current) * c.slideWidth }

// VisibleRange returns the half-open slide range currently on screen.
func (c *Controller) VisibleRange() (from, to int) {
	to = c.current + c.visible
	if to > c.total {
		to = c.total
	}
	return c.current, to
}

func (c *Controller) Running() bool { return c.timer.Active() }

func (c *Controller) Hovered() bool { return c.hovered }

func (c *Controller) Total() int { return c.total }

func (c *Controller) Visible() int { return c.visible }

func (c *Controller) SlideWidth() float64 { return c.slideWidth }

func (c *Controller) Interval() time.Duration { return c.interval }
