package export

import (
	"bytes"
	"image/color"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/coreforge/internal/particles"
	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

func renderedField(t *testing.T) (*particles.Field, *scene.Recorder, int) {
	t.Helper()
	f := particles.New(particles.DefaultParams(), &scene.Pointer{}, nil)
	f.Initialize(800, 600)
	rec := &scene.Recorder{}
	rec.Clear()
	links := f.Render(rec)
	return f, rec, links
}

func TestSceneToSVG(t *testing.T) {
	_, rec, links := renderedField(t)
	svg := SceneToSVG(rec, 800, 600, viz.ThemeCoreforge)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 70 {
		t.Errorf("circles = %d, want 70", n)
	}
	if n := strings.Count(svg, "<line"); n != links {
		t.Errorf("lines = %d, want %d", n, links)
	}
	if !strings.Contains(svg, `fill="#00f0ff"`) {
		t.Error("particles should use the field colour")
	}
}

func TestSceneToSVG_OnlyLastFrame(t *testing.T) {
	rec := &scene.Recorder{}
	rec.FillCircle(1, 1, 1, scene.RGBA(255, 0, 0, 1))
	rec.Ops = append(rec.Ops, scene.Op{Kind: "clear"})
	rec.FillCircle(2, 2, 1, scene.RGBA(255, 0, 0, 1))
	if n := strings.Count(SceneToSVG(rec, 10, 10, viz.ThemeMono), "<circle"); n != 1 {
		t.Errorf("circles = %d, want 1", n)
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2, viz.ThemeCoreforge)
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if CanvasToSVG(nil, 1, viz.ThemeCoreforge) != "" {
		t.Error("nil canvas gives empty output")
	}
}

func TestGIFRecorder(t *testing.T) {
	f := particles.New(particles.DefaultParams(), &scene.Pointer{}, nil)
	f.Initialize(800, 600)

	g := NewGIFRecorder(200, 150, 800, 600, color.RGBA{R: 5, G: 6, B: 15, A: 255}, color.RGBA{G: 240, B: 255, A: 255})
	for i := 0; i < 5; i++ {
		g.Clear()
		f.Step()
		f.Render(g)
	}
	if g.Frames() != 5 {
		t.Fatalf("frames = %d", g.Frames())
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("decoded %d frames", len(anim.Image))
	}

	lit := 0
	img := anim.Image[0]
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if img.ColorIndexAt(x, y) != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("first frame is blank")
	}
}
