package experiment

import (
	"fmt"
	"math"
	"sort"
)

// Path places the pointer for frame i on a w x h field. inside=false means
// the pointer has left the window.
type Path func(i int, w, h float64) (x, y float64, inside bool)

const orbitPeriod = 240 // frames per revolution

type Registry struct {
	paths map[string]Path
}

func NewRegistry() *Registry {
	r := &Registry{paths: make(map[string]Path)}

	// The page pointer rests at the origin until the first move. Leaving it
	// there still repels the top-left corner, as a fresh page does.
	r.paths["none"] = func(i int, w, h float64) (float64, float64, bool) {
		return 0, 0, false
	}
	r.paths["static"] = func(i int, w, h float64) (float64, float64, bool) {
		return w / 2, h / 2, true
	}
	r.paths["orbit"] = func(i int, w, h float64) (float64, float64, bool) {
		a := 2 * math.Pi * float64(i%orbitPeriod) / orbitPeriod
		rad := math.Min(w, h) / 3
		return w/2 + rad*math.Cos(a), h/2 + rad*math.Sin(a), true
	}
	r.paths["sweep"] = func(i int, w, h float64) (float64, float64, bool) {
		t := float64(i%orbitPeriod) / orbitPeriod
		return t * w, h / 2, true
	}
	return r
}

// Register adds or replaces a named path.
func (r *Registry) Register(name string, p Path) { r.paths[name] = p }

func (r *Registry) GetPath(name string) (Path, error) {
	p, ok := r.paths[name]
	if !ok {
		return nil, fmt.Errorf("unknown pointer path: %s", name)
	}
	return p, nil
}

func (r *Registry) ListPaths() []string {
	names := make([]string, 0, len(r.paths))
	for name := range r.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
