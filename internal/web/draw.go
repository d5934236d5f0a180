package web

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/page"
)

const (
	navHeight = 40
	navSlot   = 96 // px per nav label, right aligned
	glyphW    = 6  // debug font advance
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.Scene.Draw(surface{dst: screen, bg: g.bg, glow: g.drawSpotlight})
	g.Scene.DrawOverlay(surface{dst: screen})
	g.drawSlides(screen)
	g.drawHUD(screen)
}

// drawSpotlight approximates the radial glow with stacked translucent discs;
// each disc adds alpha so the centre reaches the peak.
func (g *Game) drawSpotlight(dst *ebiten.Image) {
	p := g.Scene.Pointer
	if !p.Inside {
		return
	}
	spot := g.Scene.Spot
	step := spot.Peak / glowRings
	for i := 0; i < glowRings; i++ {
		r := spot.Reach() * float64(glowRings-i) / glowRings
		c := g.fg
		c.A = uint8(step * 255)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), c, true)
	}
}

func (g *Game) drawSlides(dst *ebiten.Image) {
	sl := g.Scene.Layout.Slider
	y := sl.Y - g.Scene.ScrollY()
	if y+sl.H < 0 || y > g.Scene.Layout.H {
		return
	}
	c := g.Scene.Slider
	slot := sl.W / float64(c.Visible())
	from, to := c.VisibleRange()
	for k := from; k < to; k++ {
		x := int(sl.X + float64(k-from)*slot + slot*0.1)
		s := g.Scene.Slides[k]
		ebitenutil.DebugPrintAt(dst, s.Title, x, int(y+sl.H*0.35))
		ebitenutil.DebugPrintAt(dst, s.Issuer, x, int(y+sl.H*0.35)+18)
	}
}

// navAt maps a click in the header to the section label under it.
func navAt(x, w int) string {
	start := w - navSlot*len(page.SectionIDs)
	if x < start {
		return ""
	}
	i := (x - start) / navSlot
	if i >= len(page.SectionIDs) {
		return ""
	}
	return page.SectionIDs[i]
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	nav := g.Scene.Nav
	w := float32(g.w)

	vector.DrawFilledRect(dst, 0, 0, w, navHeight, color.NRGBA{R: g.bg.R, G: g.bg.G, B: g.bg.B, A: 220}, false)
	vector.DrawFilledRect(dst, 0, navHeight-2, w*float32(nav.Progress/100), 2, g.fg, false)
	ebitenutil.DebugPrintAt(dst, "COREFORGE", 20, 14)

	start := g.w - navSlot*len(page.SectionIDs)
	for i, id := range page.SectionIDs {
		label := id
		if id == nav.Active {
			label = "[" + id + "]"
		}
		ebitenutil.DebugPrintAt(dst, label, start+i*navSlot, 14)
	}

	hero := "> " + g.Scene.Typed() + "_"
	if y := int(g.Scene.Layout.H*0.45 - g.Scene.ScrollY()); y > navHeight {
		ebitenutil.DebugPrintAt(dst, hero, 80, y)
	}

	h := g.h
	switch {
	case g.status != nil:
		ebitenutil.DebugPrintAt(dst, g.status.Text, 20, h-44)
	case g.asking:
		ebitenutil.DebugPrintAt(dst, "...", 20, h-44)
	case g.Form != nil:
		ebitenutil.DebugPrintAt(dst, "[C] "+contact.IdleText, 20, h-44)
	}
	if !g.Scene.Slider.Running() {
		ebitenutil.DebugPrintAt(dst, "slider paused", 20, h-60)
	}

	stats := fmt.Sprintf("%.0f FPS  %d links", ebiten.ActualFPS(), g.Scene.Field.Last().Links)
	ebitenutil.DebugPrintAt(dst, stats, g.w-len(stats)*glyphW-20, h-24)
	ebitenutil.DebugPrintAt(dst, "WHEEL scroll  1-6 jump  <> slide  C contact  T theme  Q quit", 20, h-24)
}
