package gui

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/dialog"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/viz"
)

const (
	windowW    = 1280
	windowH    = 800
	wheelStep  = 80 // px per wheel notch
	maxFrameDt = 100 * time.Millisecond
	fontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

type palette struct {
	Bg, Primary, Text, Dim, OK, Err rl.Color
}

func newPalette(t viz.Theme) palette {
	c := func(col lipgloss.Color) rl.Color {
		r, g, b := viz.RGB(col)
		return rl.NewColor(r, g, b, 255)
	}
	return palette{
		Bg:      c(t.Background),
		Primary: c(t.Primary),
		Text:    c(t.Text),
		Dim:     c(t.Muted),
		OK:      c(t.Success),
		Err:     c(t.Error),
	}
}

type App struct {
	Scene   *page.Scene
	Form    *contact.Form
	Theme   viz.Theme
	Colors  palette
	Font    rl.Font
	Running bool
	ShowHUD bool

	asking  bool
	results chan contact.Result
	status  *contact.Result
	shownAt time.Time
	nav     []navItem
}

type navItem struct {
	id   string
	rect rl.Rectangle
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowW, windowH, "coreforge")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont prefers Liberation Mono and falls back to raylib's built-in font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, form *contact.Form) *App {
	theme := viz.GetTheme(cfg.Theme)
	a := &App{
		Scene:   page.New(cfg, form),
		Form:    form,
		Theme:   theme,
		Colors:  newPalette(theme),
		Font:    loadFont(),
		Running: true,
		ShowHUD: true,
		results: make(chan contact.Result, 1),
	}
	a.Scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, form *contact.Form) {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()
	app := NewApp(cfg, form)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles one frame of input and advances the page. It returns false
// when the visitor quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsWindowResized() {
		a.Scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	select {
	case res := <-a.results:
		a.asking = false
		if res.Status != "" {
			a.status = &res
			a.shownAt = time.Now()
		}
	default:
	}
	if a.status != nil && time.Since(a.shownAt) > contact.ResetAfter {
		a.status = nil
	}

	a.handleKeys()
	a.handleMouse()

	if a.Running {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		a.Scene.Frame(min(dt, maxFrameDt))
	}
	return true
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyRight):
		a.Scene.Slider.Next()
	case rl.IsKeyPressed(rl.KeyLeft):
		a.Scene.Slider.Prev()
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	case rl.IsKeyPressed(rl.KeyT):
		a.Theme = viz.NextTheme(a.Theme.Name)
		a.Colors = newPalette(a.Theme)
	case rl.IsKeyPressed(rl.KeyC):
		a.Scene.JumpTo("contact")
		a.askContact()
	case rl.IsKeyPressed(rl.KeyPageDown), rl.IsKeyPressed(rl.KeyDown):
		a.Scene.Scroll(a.Scene.Layout.H / 2)
	case rl.IsKeyPressed(rl.KeyPageUp), rl.IsKeyPressed(rl.KeyUp):
		a.Scene.Scroll(-a.Scene.Layout.H / 2)
	case rl.IsKeyPressed(rl.KeyHome):
		a.Scene.ScrollTo(0)
	}
	for i, id := range page.SectionIDs {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			a.Scene.JumpTo(id)
		}
	}
}

func (a *App) handleMouse() {
	if w := rl.GetMouseWheelMove(); w != 0 {
		a.Scene.Scroll(-float64(w) * wheelStep)
	}

	if !rl.IsCursorOnScreen() {
		a.Scene.LeavePointer()
		return
	}
	m := rl.GetMousePosition()
	a.Scene.MovePointer(float64(m.X), float64(m.Y))

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	for _, n := range a.nav {
		if rl.CheckCollisionPointRec(m, n.rect) {
			a.Scene.JumpTo(n.id)
			return
		}
	}
	sl := a.Scene.Layout.Slider
	y := float64(m.Y) + a.Scene.ScrollY()
	if sl.Contains(float64(m.X), y) {
		if float64(m.X) < sl.X+sl.W/2 {
			a.Scene.Slider.Prev()
		} else {
			a.Scene.Slider.Next()
		}
	}
}

// askContact prompts and submits off the frame loop. Only the form is used
// there; the outcome comes back on a.results.
func (a *App) askContact() {
	if a.asking || a.Form == nil {
		return
	}
	a.asking = true
	go func() {
		p, err := dialog.Ask(dialog.Zenity)
		if err != nil {
			if !errors.Is(err, dialog.ErrCanceled) {
				log.Printf("contact dialog: %v", err)
			}
			a.results <- contact.Result{}
			return
		}
		res, err := a.Form.Submit(context.Background(), p)
		if err != nil {
			log.Printf("contact: %v", err)
		}
		if err := dialog.Notify(res); err != nil {
			log.Printf("contact dialog: %v", err)
		}
		a.results <- res
	}()
}
