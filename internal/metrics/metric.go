package metrics

import "github.com/san-kum/coreforge/internal/particles"

// Metric folds per-frame field stats into one number.
type Metric interface {
	Name() string
	Observe(st particles.FrameStats)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every stored run.
func Defaults(count int) []Metric {
	return []Metric{
		NewMeanLinks(),
		NewPeakLinks(),
		NewResetRate(count),
		NewRepelRate(count),
		NewMeanAlpha(),
	}
}

// Collect returns the current value of every metric by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
