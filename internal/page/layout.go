package page

import (
	"github.com/san-kum/coreforge/internal/effects"
	"github.com/san-kum/coreforge/internal/scene"
)

var SectionIDs = []string{"home", "about", "skills", "projects", "certificates", "contact"}

type Skill struct {
	Name    string
	Percent float64
}

var DefaultSkills = []Skill{
	{"Java", 90},
	{"OOP", 85},
	{"Data Structures", 80},
	{"Swing", 75},
	{"SQL", 70},
	{"Python", 60},
}

var DefaultProjects = []string{
	"Library Manager",
	"Bank Ledger",
	"Path Visualizer",
}

// Layout is the page geometry in document pixels. Every section is one
// viewport tall.
type Layout struct {
	W, H     float64
	Sections []effects.Section
	Slider   scene.Rect
	Cards    []scene.Rect
	Blocks   map[string]scene.Rect
}

func NewLayout(w, h float64, visible int, slideWidth float64) Layout {
	l := Layout{W: w, H: h, Blocks: make(map[string]scene.Rect)}
	for i, id := range SectionIDs {
		top := float64(i) * h
		l.Sections = append(l.Sections, effects.Section{ID: id, Top: top})
		if id != "home" {
			l.Blocks[id] = scene.Rect{X: w * 0.1, Y: top + h*0.15, W: w * 0.8, H: h * 0.7}
		}
	}

	sw := float64(visible) * slideWidth
	if sw > w*0.9 {
		sw = w * 0.9
	}
	cert := l.Top("certificates")
	l.Slider = scene.Rect{X: (w - sw) / 2, Y: cert + h*0.3, W: sw, H: h * 0.4}

	proj := l.Top("projects")
	cw := w * 0.8 / float64(len(DefaultProjects))
	for i := range DefaultProjects {
		l.Cards = append(l.Cards, scene.Rect{
			X: w*0.1 + float64(i)*cw + cw*0.05,
			Y: proj + h*0.3,
			W: cw * 0.9,
			H: h * 0.4,
		})
	}
	return l
}

func (l Layout) Top(id string) float64 {
	for _, s := range l.Sections {
		if s.ID == id {
			return s.Top
		}
	}
	return 0
}

func (l Layout) DocHeight() float64 { return float64(len(l.Sections)) * l.H }

// MaxScroll is the largest valid scroll offset.
func (l Layout) MaxScroll() float64 {
	if m := l.DocHeight() - l.H; m > 0 {
		return m
	}
	return 0
}
