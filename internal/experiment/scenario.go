package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Step runs Frames frames with the pointer held at Pointer, following Path,
// or outside the window when Leave is set. Resize happens before the frames.
type Step struct {
	Frames  int    `yaml:"frames"`
	Pointer *Point `yaml:"pointer,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Leave   bool   `yaml:"leave,omitempty"`
	Resize  *Size  `yaml:"resize,omitempty"`
}

// Scenario is a scripted headless run loaded from YAML:
//
//	name: hover-demo
//	width: 1280
//	height: 800
//	steps:
//	  - frames: 120
//	    pointer: {x: 640, y: 400}
//	  - resize: {width: 800, height: 600}
//	    frames: 60
//	    path: orbit
type Scenario struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Steps  []Step  `yaml:"steps"`
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("%w: scenario size %vx%v", ErrBadConfig, sc.Width, sc.Height)
	}
	for i, st := range sc.Steps {
		if st.Frames < 0 {
			return nil, fmt.Errorf("%w: step %d has negative frames", ErrBadConfig, i)
		}
		if st.Resize != nil && (st.Resize.Width <= 0 || st.Resize.Height <= 0) {
			return nil, fmt.Errorf("%w: step %d resize", ErrBadConfig, i)
		}
	}
	return &sc, nil
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// Frames is the total number of frames across all steps.
func (sc *Scenario) Frames() int {
	n := 0
	for _, st := range sc.Steps {
		n += st.Frames
	}
	return n
}

func (st Step) path(reg *Registry) (Path, error) {
	switch {
	case st.Leave:
		return func(int, float64, float64) (float64, float64, bool) { return 0, 0, false }, nil
	case st.Pointer != nil:
		p := *st.Pointer
		return func(int, float64, float64) (float64, float64, bool) { return p.X, p.Y, true }, nil
	case st.Path != "":
		return reg.GetPath(st.Path)
	}
	return reg.GetPath("none")
}
