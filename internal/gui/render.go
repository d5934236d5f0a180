package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/scene"
)

// surface draws scene primitives straight to the raylib back buffer. glow
// runs right after each clear, under everything else.
type surface struct {
	bg   rl.Color
	glow func()
}

func (s surface) Clear() {
	rl.ClearBackground(s.bg)
	if s.glow != nil {
		s.glow()
	}
}

func (s surface) FillCircle(x, y, r float64, c scene.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), color(c))
}

func (s surface) StrokeLine(x0, y0, x1, y1, width float64, c scene.Color) {
	rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), float32(width), color(c))
}

func color(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.Alpha8())
}

func (a *App) Draw() {
	rl.BeginDrawing()

	a.Scene.Draw(surface{bg: a.Colors.Bg, glow: a.drawSpotlight})
	a.Scene.DrawOverlay(surface{bg: a.Colors.Bg})
	a.drawSlides()
	a.drawHero()
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

// drawSpotlight paints the radial glow behind the field.
func (a *App) drawSpotlight() {
	p := a.Scene.Pointer
	if !p.Inside {
		return
	}
	spot := a.Scene.Spot
	inner := rl.Fade(a.Colors.Primary, float32(spot.Peak))
	outer := rl.Fade(a.Colors.Primary, 0)
	rl.DrawCircleGradient(int32(p.X), int32(p.Y), float32(spot.Reach()), inner, outer)
}

func (a *App) drawSlides() {
	sl := a.Scene.Layout.Slider
	y := sl.Y - a.Scene.ScrollY()
	if y+sl.H < 0 || y > a.Scene.Layout.H {
		return
	}
	c := a.Scene.Slider
	slot := sl.W / float64(c.Visible())
	from, to := c.VisibleRange()
	for k := from; k < to; k++ {
		x := sl.X + float64(k-from)*slot + slot*0.1
		s := a.Scene.Slides[k]
		a.drawText(s.Title, int(x), int(y+sl.H*0.35), 18, a.Colors.Text)
		a.drawText(s.Issuer, int(x), int(y+sl.H*0.35)+26, 14, a.Colors.Dim)
	}
	if !c.Running() {
		a.drawText("PAUSED", int(sl.X+sl.W)-70, int(y)-22, 14, a.Colors.Dim)
	}
}

func (a *App) drawHero() {
	y := a.Scene.Layout.H*0.45 - a.Scene.ScrollY()
	if y < -40 {
		return
	}
	a.drawText("> "+a.Scene.Typed()+"_", 80, int(y), 32, a.Colors.Primary)
}

func (a *App) DrawHUD() {
	w := a.Scene.Layout.W
	nav := a.Scene.Nav

	height := float32(64)
	if nav.Slim {
		height = 44
	}
	rl.DrawRectangle(0, 0, int32(w), int32(height), rl.Fade(a.Colors.Bg, 0.85))
	rl.DrawRectangle(0, int32(height)-2, int32(w*nav.Progress/100), 2, a.Colors.Primary)
	a.drawText("COREFORGE", 30, int(height/2)-12, 24, a.Colors.Primary)

	a.nav = a.nav[:0]
	x := float32(w) - 30
	for i := len(page.SectionIDs) - 1; i >= 0; i-- {
		id := page.SectionIDs[i]
		size := rl.MeasureTextEx(a.Font, id, 16, 1)
		x -= size.X
		col := a.Colors.Dim
		if id == nav.Active {
			col = a.Colors.Primary
		}
		a.drawText(id, int(x), int(height/2)-8, 16, col)
		a.nav = append(a.nav, navItem{id: id, rect: rl.NewRectangle(x, 0, size.X, height)})
		x -= 24
	}

	if nav.ToTop {
		a.drawText("[HOME] TOP", int(w)-120, int(a.Scene.Layout.H)-60, 14, a.Colors.Dim)
	}

	h := int(a.Scene.Layout.H)
	switch {
	case a.status != nil && a.status.Status == contact.StatusOK:
		a.drawText(a.status.Text, 30, h-60, 16, a.Colors.OK)
	case a.status != nil:
		a.drawText(a.status.Text, 30, h-60, 16, a.Colors.Err)
	case a.asking:
		a.drawText("...", 30, h-60, 16, a.Colors.Dim)
	}

	a.drawText("[WHEEL] SCROLL  [1-6] JUMP  [<>] SLIDE  [C] CONTACT  [T] THEME  [H] HUD  [Q] QUIT", 30, h-30, 14, a.Colors.Dim)
	a.drawText(fmt.Sprintf("%d FPS  %d links", rl.GetFPS(), a.Scene.Field.Last().Links), int(w)-200, h-30, 14, a.Colors.Dim)
}

func (a *App) drawText(text string, x, y int, size int, c rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}
