// Package web is the ebiten frontend. The same Game runs in a desktop window
// and, built for js/wasm, in a browser canvas.
package web

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

const (
	windowW   = 1280
	windowH   = 800
	wheelStep = 80
	glowRings = 12
)

var (
	errNoPrompt = errors.New("web: no contact prompt on this platform")
	errCanceled = errors.New("web: contact prompt canceled")
)

type Game struct {
	Scene   *page.Scene
	Form    *contact.Form
	Theme   viz.Theme
	Running bool

	bg, fg  color.NRGBA
	w, h    int
	asking  bool
	results chan contact.Result
	status  *contact.Result
	shownAt time.Time
}

func NewGame(cfg *config.Config, form *contact.Form) *Game {
	g := &Game{
		Scene:   page.New(cfg, form),
		Form:    form,
		Running: true,
		results: make(chan contact.Result, 1),
	}
	g.setTheme(viz.GetTheme(cfg.Theme))
	return g
}

func (g *Game) setTheme(t viz.Theme) {
	g.Theme = t
	r, gr, b := viz.RGB(t.Background)
	g.bg = color.NRGBA{R: r, G: gr, B: b, A: 255}
	r, gr, b = viz.RGB(t.Primary)
	g.fg = color.NRGBA{R: r, G: gr, B: b, A: 255}
}

// Layout reseeds the page whenever the window or canvas changes size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.Scene.Resize(float64(g.w), float64(g.h))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case res := <-g.results:
		g.asking = false
		if res.Status != "" {
			g.status = &res
			g.shownAt = time.Now()
		}
	default:
	}
	if g.status != nil && time.Since(g.shownAt) > contact.ResetAfter {
		g.status = nil
	}

	g.handleKeys()
	g.handleMouse()

	if g.Running {
		g.Scene.Frame(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.Scene.Slider.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.Scene.Slider.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.Running = !g.Running
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.setTheme(viz.NextTheme(g.Theme.Name))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.Scene.JumpTo("contact")
		g.askContact()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.Scene.Scroll(g.Scene.Layout.H / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.Scene.Scroll(-g.Scene.Layout.H / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.Scene.ScrollTo(0)
	}
	for i, id := range page.SectionIDs {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.Scene.JumpTo(id)
		}
	}
}

func (g *Game) handleMouse() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.Scene.Scroll(-dy * wheelStep)
	}

	x, y := ebiten.CursorPosition()
	if !ebiten.IsFocused() || x < 0 || y < 0 || x >= g.w || y >= g.h {
		g.Scene.LeavePointer()
		return
	}
	g.Scene.MovePointer(float64(x), float64(y))

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if y < navHeight {
		if id := navAt(x, g.w); id != "" {
			g.Scene.JumpTo(id)
		}
		return
	}
	sl := g.Scene.Layout.Slider
	if sl.Contains(float64(x), float64(y)+g.Scene.ScrollY()) {
		if float64(x) < sl.X+sl.W/2 {
			g.Scene.Slider.Prev()
		} else {
			g.Scene.Slider.Next()
		}
	}
}

func (g *Game) askContact() {
	if g.asking || g.Form == nil {
		return
	}
	g.asking = true
	go func() {
		p, err := promptContact()
		if err != nil {
			if !errors.Is(err, errCanceled) {
				log.Printf("contact prompt: %v", err)
			}
			g.results <- contact.Result{}
			return
		}
		res, err := g.Form.Submit(context.Background(), p)
		if err != nil {
			log.Printf("contact: %v", err)
		}
		notifyResult(res)
		g.results <- res
	}()
}

// Run opens a resizable window and blocks until it is closed.
func Run(cfg *config.Config, form *contact.Form) error {
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("coreforge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(NewGame(cfg, form)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}

// surface draws scene primitives onto an ebiten image.
type surface struct {
	dst  *ebiten.Image
	bg   color.Color
	glow func(*ebiten.Image)
}

func (s surface) Clear() {
	s.dst.Fill(s.bg)
	if s.glow != nil {
		s.glow(s.dst)
	}
}

func (s surface) FillCircle(x, y, r float64, c scene.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), nrgba(c), true)
}

func (s surface) StrokeLine(x0, y0, x1, y1, width float64, c scene.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), nrgba(c), true)
}

func nrgba(c scene.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.Alpha8()}
}
