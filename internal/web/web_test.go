package web

import (
	"testing"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/scene"
)

func TestNavAt(t *testing.T) {
	w := 1280
	start := w - navSlot*len(page.SectionIDs)
	tests := []struct {
		x    int
		want string
	}{
		{0, ""},
		{start - 1, ""},
		{start, "home"},
		{start + navSlot*2 + 5, "skills"},
		{w - 1, "contact"},
	}
	for _, tt := range tests {
		if got := navAt(tt.x, w); got != tt.want {
			t.Errorf("navAt(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestGame_LayoutResizesScene(t *testing.T) {
	g := NewGame(config.DefaultConfig(), nil)
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("layout = %dx%d", w, h)
	}
	if w, h := g.Scene.Field.Size(); w != 800 || h != 600 {
		t.Errorf("field = %vx%v", w, h)
	}
	if g.Scene.Field.Len() != 70 {
		t.Errorf("particles = %d", g.Scene.Field.Len())
	}
}

func TestNRGBA(t *testing.T) {
	c := nrgba(scene.RGBA(0, 240, 255, 0.5))
	if c.G != 240 || c.B != 255 || c.A != 128 {
		t.Errorf("color = %+v", c)
	}
}
