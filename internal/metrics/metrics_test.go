package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/coreforge/internal/particles"
)

func TestMeanAndPeakLinks(t *testing.T) {
	mean := NewMeanLinks()
	peak := NewPeakLinks()
	for _, n := range []int{10, 20, 30} {
		st := particles.FrameStats{Links: n}
		mean.Observe(st)
		peak.Observe(st)
	}
	if mean.Value() != 20 {
		t.Errorf("mean = %v, want 20", mean.Value())
	}
	if peak.Value() != 30 {
		t.Errorf("peak = %v, want 30", peak.Value())
	}

	mean.Reset()
	peak.Reset()
	if mean.Value() != 0 || peak.Value() != 0 {
		t.Error("reset should clear")
	}
}

func TestRates(t *testing.T) {
	resets := NewResetRate(10)
	repel := NewRepelRate(10)
	for i := 0; i < 4; i++ {
		st := particles.FrameStats{Resets: 1, Repelled: 5}
		resets.Observe(st)
		repel.Observe(st)
	}
	if math.Abs(resets.Value()-0.1) > 1e-12 {
		t.Errorf("reset rate = %v, want 0.1", resets.Value())
	}
	if math.Abs(repel.Value()-0.5) > 1e-12 {
		t.Errorf("repel rate = %v, want 0.5", repel.Value())
	}

	if NewResetRate(0).Value() != 0 {
		t.Error("empty field has no rate")
	}
}

func TestCollect(t *testing.T) {
	ms := Defaults(70)
	for _, m := range ms {
		m.Observe(particles.FrameStats{Links: 4, MeanAlpha: 0.2})
	}
	got := Collect(ms)
	for _, name := range []string{"mean_links", "peak_links", "reset_rate", "repel_rate", "mean_alpha"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing %s", name)
		}
	}
	if got["mean_alpha"] != 0.2 {
		t.Errorf("mean_alpha = %v", got["mean_alpha"])
	}
}
