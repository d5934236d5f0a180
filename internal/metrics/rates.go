package metrics

import "github.com/san-kum/coreforge/internal/particles"

// rate is the share of particle-frames in which an event happened.
type rate struct {
	name    string
	count   int
	events  int
	samples int
	pick    func(particles.FrameStats) int
}

func (r *rate) Name() string { return r.name }

func (r *rate) Observe(st particles.FrameStats) {
	r.events += r.pick(st)
	r.samples++
}

func (r *rate) Value() float64 {
	if r.samples == 0 || r.count == 0 {
		return 0
	}
	return float64(r.events) / float64(r.samples*r.count)
}

func (r *rate) Reset() {
	r.events = 0
	r.samples = 0
}

// NewResetRate tracks how often particles drift off and respawn.
func NewResetRate(count int) Metric {
	return &rate{name: "reset_rate", count: count, pick: func(st particles.FrameStats) int { return st.Resets }}
}

// NewRepelRate tracks how often particles sit inside the pointer's repel radius.
func NewRepelRate(count int) Metric {
	return &rate{name: "repel_rate", count: count, pick: func(st particles.FrameStats) int { return st.Repelled }}
}
