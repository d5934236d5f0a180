package experiment

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/san-kum/coreforge/internal/particles"
)

// Ensemble runs the same configuration under consecutive seeds, one
// goroutine per run. Each run owns its field and rng.
type Ensemble struct {
	base      Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, numRuns int) *Ensemble {
	return &Ensemble{base: cfg, numRuns: numRuns, seedStart: cfg.Seed}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("%w: ensemble needs at least one run", ErrBadConfig)
	}
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.base
			cfg.Seed = e.seedStart + int64(idx)
			exp, err := New(cfg, nil)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// MeanMetrics averages each metric over results.
func MeanMetrics(results []*Result) map[string]float64 {
	out := make(map[string]float64)
	n := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		n++
		for k, v := range r.Metrics {
			out[k] += v
		}
	}
	for k := range out {
		out[k] /= float64(n)
	}
	return out
}

// SweepParams names the particle parameters a Sweep can vary.
var SweepParams = map[string]func(p *particles.Params, v float64){
	"count":        func(p *particles.Params, v float64) { p.Count = int(v) },
	"speed":        func(p *particles.Params, v float64) { p.Speed = v },
	"link_radius":  func(p *particles.Params, v float64) { p.LinkRadius = v },
	"repel_radius": func(p *particles.Params, v float64) { p.RepelRadius = v },
}

// SweepPoint is the metric value measured at one parameter value.
type SweepPoint struct {
	Value  float64
	Metric float64
}

// Sweep varies one parameter over values and records metric for each run.
// It returns the points in value order and the value with the lowest metric.
func Sweep(ctx context.Context, cfg Config, param string, values []float64, metric string) ([]SweepPoint, float64, error) {
	set, ok := SweepParams[param]
	if !ok {
		return nil, 0, fmt.Errorf("%w: cannot sweep %q", ErrBadConfig, param)
	}
	if len(values) == 0 {
		return nil, 0, fmt.Errorf("%w: empty sweep", ErrBadConfig)
	}

	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		c := cfg
		set(&c.Params, v)
		exp, err := New(c, nil)
		if err != nil {
			return points, 0, err
		}
		res, err := exp.Run(ctx)
		if err != nil {
			return points, 0, err
		}
		m, ok := res.Metrics[metric]
		if !ok {
			return points, 0, fmt.Errorf("%w: unknown metric %q", ErrBadConfig, metric)
		}
		points = append(points, SweepPoint{Value: v, Metric: m})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Value < points[j].Value })
	best := points[0]
	for _, p := range points[1:] {
		if p.Metric < best.Metric {
			best = p
		}
	}
	return points, best.Value, nil
}
