package gui

import (
	"testing"

	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

func TestColor(t *testing.T) {
	c := color(scene.RGBA(10, 20, 30, 1))
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("color = %+v", c)
	}
	if got := color(scene.RGBA(0, 0, 0, 0)).A; got != 0 {
		t.Errorf("transparent alpha = %d", got)
	}
}

func TestPalette(t *testing.T) {
	p := newPalette(viz.ThemeCoreforge)
	if p.Primary.R != 0x00 || p.Primary.G != 0xf0 || p.Primary.B != 0xff {
		t.Errorf("primary = %+v", p.Primary)
	}
	if p.Bg.A != 255 {
		t.Error("palette colours are opaque")
	}
}
