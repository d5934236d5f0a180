package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/coreforge/internal/metrics"
	"github.com/san-kum/coreforge/internal/particles"
	"github.com/san-kum/coreforge/internal/scene"
)

var (
	// ErrCanceled indicates the run stopped early; the partial result is kept.
	ErrCanceled = errors.New("experiment: run canceled by context")

	ErrBadConfig = errors.New("experiment: invalid configuration")
)

type Config struct {
	Name    string
	Params  particles.Params
	Width   float64
	Height  float64
	Frames  int
	Seed    int64
	Pointer string
}

type Result struct {
	Frames   []particles.FrameStats
	Metrics  map[string]float64
	Canceled bool
	Width    float64
	Height   float64
}

// Experiment drives a particle field headless: no window, one pointer path
// or scenario, stats collected every frame.
type Experiment struct {
	cfg     Config
	field   *particles.Field
	pointer *scene.Pointer
	path    Path
	metrics []metrics.Metric
	result  *Result

	// OnFrame, if set, is called after each frame with the frame index.
	OnFrame func(i int, st particles.FrameStats)
}

func New(cfg Config, reg *Registry) (*Experiment, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrBadConfig, cfg.Width, cfg.Height)
	}
	if cfg.Frames < 0 {
		return nil, fmt.Errorf("%w: negative frame count", ErrBadConfig)
	}
	if cfg.Params.Count < 0 {
		return nil, fmt.Errorf("%w: negative particle count %d", ErrBadConfig, cfg.Params.Count)
	}
	if reg == nil {
		reg = NewRegistry()
	}
	if cfg.Pointer == "" {
		cfg.Pointer = "none"
	}
	path, err := reg.GetPath(cfg.Pointer)
	if err != nil {
		return nil, err
	}

	ptr := &scene.Pointer{}
	e := &Experiment{
		cfg:     cfg,
		pointer: ptr,
		field:   particles.New(cfg.Params, ptr, rand.New(rand.NewSource(cfg.Seed))),
		path:    path,
		metrics: metrics.Defaults(cfg.Params.Count),
	}
	e.field.Initialize(cfg.Width, cfg.Height)
	e.result = &Result{Width: cfg.Width, Height: cfg.Height}
	return e, nil
}

// Run steps the field for the configured number of frames along the pointer
// path. On cancellation it returns the frames so far and ErrCanceled.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	return e.result, e.run(ctx, e.cfg.Frames, e.path)
}

// RunScenario plays sc instead of the configured pointer path.
func (e *Experiment) RunScenario(ctx context.Context, sc *Scenario, reg *Registry) (*Result, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	for i, step := range sc.Steps {
		if step.Resize != nil {
			e.field.Resize(step.Resize.Width, step.Resize.Height)
			e.result.Width, e.result.Height = step.Resize.Width, step.Resize.Height
		}
		path, err := step.path(reg)
		if err != nil {
			return e.result, fmt.Errorf("step %d: %w", i, err)
		}
		if err := e.run(ctx, step.Frames, path); err != nil {
			return e.result, err
		}
	}
	return e.result, nil
}

func (e *Experiment) run(ctx context.Context, frames int, path Path) error {
	var sink discard
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			e.result.Canceled = true
			e.result.Metrics = metrics.Collect(e.metrics)
			return fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		default:
		}

		w, h := e.field.Size()
		if x, y, inside := path(i, w, h); inside {
			e.pointer.MoveTo(x, y)
		} else {
			e.pointer.Leave()
		}

		st := e.field.Step()
		st.Links = e.field.Render(sink)
		for _, m := range e.metrics {
			m.Observe(st)
		}
		e.result.Frames = append(e.result.Frames, st)
		if e.OnFrame != nil {
			e.OnFrame(len(e.result.Frames)-1, st)
		}
	}
	e.result.Metrics = metrics.Collect(e.metrics)
	return nil
}

func (e *Experiment) Field() *particles.Field { return e.field }

func (e *Experiment) Config() Config { return e.cfg }

// discard is a Surface that draws nothing; headless runs only need counts.
type discard struct{}

func (discard) Clear() {}
func (discard) FillCircle(x, y, r float64, c scene.Color) {}
func (discard) StrokeLine(x0, y0, x1, y1, w float64, c scene.Color) {}
