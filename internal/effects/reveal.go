package effects

import (
	"time"

	"github.com/san-kum/coreforge/internal/scene"
)

const (
	DefaultRevealThreshold = 0.1
	RevealStagger          = 70 * time.Millisecond
	revealStaggerCycle     = 6
)

// Bar is a skill bar inside a revealable element.
type Bar struct {
	Name   string
	Target float64 // percent
	Width  float64 // percent, 0 until revealed
}

// Item is one element that fades up the first time it scrolls into view.
type Item struct {
	ID       string
	Delay    time.Duration
	Revealed bool
	Bars     []Bar
}

type Revealer struct {
	Threshold float64
	items     []*Item
	index     map[string]*Item
}

func NewRevealer() *Revealer {
	return &Revealer{Threshold: DefaultRevealThreshold, index: make(map[string]*Item)}
}

// Observe registers an element. Its stagger delay depends on its position
// in registration order. Observing the same id twice returns the first item.
func (r *Revealer) Observe(id string, bars ...Bar) *Item {
	if it, ok := r.index[id]; ok {
		return it
	}
	it := &Item{
		ID:    id,
		Delay: time.Duration(len(r.items)%revealStaggerCycle) * RevealStagger,
		Bars:  append([]Bar(nil), bars...),
	}
	for i := range it.Bars {
		it.Bars[i].Width = 0
	}
	r.items = append(r.items, it)
	r.index[id] = it
	return it
}

// Intersect reports the visible ratio of an element. It returns true only
// when the element becomes revealed on this call; revealed items stay so.
func (r *Revealer) Intersect(id string, ratio float64) bool {
	it, ok := r.index[id]
	if !ok || it.Revealed || ratio < r.Threshold || ratio <= 0 {
		return false
	}
	it.Revealed = true
	for i := range it.Bars {
		it.Bars[i].Width = it.Bars[i].Target
	}
	return true
}

func (r *Revealer) Item(id string) (*Item, bool) {
	it, ok := r.index[id]
	return it, ok
}

func (r *Revealer) Items() []*Item { return r.items }

// VisibleRatio is the fraction of el's area that lies inside view.
func VisibleRatio(el, view scene.Rect) float64 {
	area := el.W * el.H
	if area <= 0 {
		return 0
	}
	w := overlap(el.X, el.X+el.W, view.X, view.X+view.W)
	h := overlap(el.Y, el.Y+el.H, view.Y, view.Y+view.H)
	return w * h / area
}

func overlap(a0, a1, b0, b1 float64) float64 {
	lo, hi := a0, a1
	if b0 > lo {
		lo = b0
	}
	if b1 < hi {
		hi = b1
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
