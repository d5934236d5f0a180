package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/export"
	"github.com/san-kum/coreforge/internal/page"
	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

const (
	headerRows = 2 // nav, progress
	footerRows = 4 // hero, slider, status, hints
	statsWidth = 40
	scrollStep = 3 // rows per wheel notch
	maxFrameDt = 100 * time.Millisecond
)

type tickMsg time.Time

type sentMsg struct {
	res contact.Result
	err error
}

type resetMsg struct{ seq int }

// Model is the terminal page. Each terminal cell stands for
// cellW x cellH page pixels.
type Model struct {
	cfg    *config.Config
	scene  *page.Scene
	form   *contact.Form
	canvas *viz.Canvas
	theme  viz.Theme
	styles viz.Styles

	width, height int
	cellW, cellH  float64
	canvasRows    int
	canvasCols    int

	running   bool
	showHelp  bool
	showStats bool
	lastTick  time.Time

	editing  bool
	input    contactForm
	sending  bool
	result   *contact.Result
	resultID int

	gif     *export.GIFRecorder
	gifPath string
	svgPath string
	note    string
}

// New builds the terminal page. form may be nil; the contact section is
// then read-only.
func New(cfg *config.Config, form *contact.Form) Model {
	theme := viz.GetTheme(cfg.Theme)
	m := Model{
		cfg:     cfg,
		scene:   page.New(cfg, form),
		form:    form,
		theme:   theme,
		styles:  viz.NewStyles(theme),
		cellW:   cfg.Viewport.CellWidth,
		cellH:   cfg.Viewport.CellHeight,
		running: true,
		gifPath: "coreforge.gif",
		svgPath: "coreforge-term.svg",
	}
	m.layout(80, 24)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDuration(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// layout sizes the canvas to the terminal and reseeds the page.
func (m *Model) layout(w, h int) {
	m.width, m.height = w, h
	cols := w
	if m.showStats {
		cols -= statsWidth
	}
	m.canvasCols = max(cols, 10)
	m.canvasRows = max(h-headerRows-footerRows, 4)

	m.canvas = viz.NewCanvas(m.canvasCols, m.canvasRows)
	pw, ph := float64(m.canvasCols)*m.cellW, float64(m.canvasRows)*m.cellH
	m.canvas.Scale(pw, ph)
	m.scene.Resize(pw, ph)
	if m.gif != nil {
		m.stopRecording()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := m.cfg.FrameDuration()
		if !m.lastTick.IsZero() {
			dt = min(now.Sub(m.lastTick), maxFrameDt)
		}
		m.lastTick = now
		if m.running {
			m.scene.Frame(dt)
		}
		var surf scene.Surface = m.canvas
		if m.gif != nil {
			surf = scene.Tee(m.canvas, m.gif)
		}
		m.scene.Draw(surf)
		m.scene.DrawOverlay(surf)
		return m, m.tick()

	case sentMsg:
		m.sending = false
		if msg.err != nil && errors.Is(msg.err, contact.ErrInvalidMessage) {
			m.input.err = msg.err.Error()
			return m, nil
		}
		if msg.err != nil {
			log.Printf("contact: %v", msg.err)
		}
		res := msg.res
		m.result = &res
		m.resultID++
		id := m.resultID
		return m, tea.Tick(contact.ResetAfter, func(time.Time) tea.Msg { return resetMsg{seq: id} })

	case resetMsg:
		if msg.seq == m.resultID && m.result != nil {
			if m.result.ClearForm() {
				m.input.reset()
			}
			m.result = nil
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.gif != nil {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "left", "h":
		m.scene.Slider.Prev()
	case "right", "l":
		m.scene.Slider.Next()
	case "pgdown", "j", "down":
		m.scene.Scroll(float64(m.canvasRows) * m.cellH / 2)
	case "pgup", "k", "up":
		m.scene.Scroll(-float64(m.canvasRows) * m.cellH / 2)
	case "home":
		m.scene.ScrollTo(0)
	case "end":
		m.scene.ScrollTo(m.scene.Layout.MaxScroll())
	case "1", "2", "3", "4", "5", "6":
		m.scene.JumpTo(page.SectionIDs[int(msg.String()[0]-'1')])
	case "c":
		m.scene.JumpTo("contact")
		m.editing = true
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
	case "s":
		m.showStats = !m.showStats
		m.layout(m.width, m.height)
	case "g":
		if m.gif != nil {
			m.stopRecording()
		} else {
			m.startRecording()
		}
	case "x":
		m.saveSVG()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// saveSVG writes the braille canvas as it is on screen.
func (m *Model) saveSVG() {
	svg := export.CanvasToSVG(m.canvas, 4, m.theme)
	if err := os.WriteFile(m.svgPath, []byte(svg), 0644); err != nil {
		log.Printf("svg: %v", err)
		m.note = "svg: " + err.Error()
		return
	}
	m.note = "saved " + m.svgPath
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	if !m.input.update(msg) || m.sending {
		return m, nil
	}
	p := m.input.params()
	if err := p.Validate(); err != nil {
		m.input.err = err.Error()
		return m, nil
	}
	if m.form == nil {
		m.input.err = "contact form is not configured"
		return m, nil
	}
	m.sending = true
	return m, submit(m.form, p)
}

// submit sends off the frame loop. The form only touches its sender,
// opener and outbox, never the page state.
func submit(form *contact.Form, p contact.Params) tea.Cmd {
	return func() tea.Msg {
		res, err := form.Submit(context.Background(), p)
		return sentMsg{res: res, err: err}
	}
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	row := msg.Y - headerRows
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.scene.Scroll(scrollStep * m.cellH)
		return
	case msg.Button == tea.MouseButtonWheelUp:
		m.scene.Scroll(-scrollStep * m.cellH)
		return
	}

	switch {
	case msg.Y == 0 && msg.Action == tea.MouseActionPress:
		if id := m.navAt(msg.X); id != "" {
			m.scene.JumpTo(id)
		}
	case row >= 0 && row < m.canvasRows && msg.X < m.canvasCols:
		m.scene.MovePointer((float64(msg.X)+0.5)*m.cellW, (float64(row)+0.5)*m.cellH)
	case row == m.canvasRows+1:
		// slider row
		m.scene.LeavePointer()
		m.scene.Slider.Hover(true)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.clickSlider(msg.X)
		}
	default:
		m.scene.LeavePointer()
	}
}

func (m *Model) clickSlider(x int) {
	switch {
	case x <= 2:
		m.scene.Slider.Prev()
	case x >= m.width-3:
		m.scene.Slider.Next()
	default:
		dotsStart := m.width - 4 - 2*m.scene.Slider.PageCount()
		if x >= dotsStart {
			m.scene.Slider.Activate((x - dotsStart) / 2)
		}
	}
}

// navAt maps a header column to the section under it.
func (m *Model) navAt(x int) string {
	pos := len("COREFORGE ")
	for _, id := range page.SectionIDs {
		end := pos + len(id) + 2
		if x >= pos && x < end {
			return id
		}
		pos = end + 1
	}
	return ""
}

func (m *Model) startRecording() {
	bgR, bgG, bgB := viz.RGB(m.theme.Background)
	fgR, fgG, fgB := viz.RGB(m.theme.Primary)
	w, h := m.scene.Layout.W, m.scene.Layout.H
	m.gif = export.NewGIFRecorder(int(w/2), int(h/2), w, h,
		colorRGBA(bgR, bgG, bgB), colorRGBA(fgR, fgG, fgB))
}

func (m *Model) stopRecording() {
	if err := m.gif.Save(m.gifPath); err != nil {
		log.Printf("gif: %v", err)
	} else {
		log.Printf("gif: wrote %d frames to %s", m.gif.Frames(), m.gifPath)
	}
	m.gif = nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.navView() + "\n")
	b.WriteString(viz.ProgressBar(m.scene.Nav.Progress, m.width, m.theme) + "\n")

	main := m.canvas.Render(m.theme)
	main = strings.TrimSuffix(main, "\n")
	if m.showStats {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.statsView())
	}
	if m.editing {
		main = lipgloss.Place(m.canvasCols, m.canvasRows, lipgloss.Center, lipgloss.Center,
			m.styles.Panel.Render(m.input.view(m.styles, min(60, m.canvasCols-4))))
	}
	b.WriteString(main + "\n")

	b.WriteString(m.heroView() + "\n")
	b.WriteString(m.sliderView() + "\n")
	b.WriteString(m.statusView() + "\n")
	b.WriteString(m.styles.KeyHint.Render("↑↓ scroll  ←→ slide  1-6 jump  c contact  s stats  t theme  g gif  x svg  ? help  q quit"))
	return b.String()
}

func (m Model) navView() string {
	parts := []string{viz.GradientText("COREFORGE", m.theme.Primary, m.theme.Secondary)}
	for _, id := range page.SectionIDs {
		label := " " + id + " "
		if id == m.scene.Nav.Active {
			parts = append(parts, m.styles.Active.Render(label))
		} else {
			parts = append(parts, m.styles.Subtle.Render(label))
		}
	}
	nav := strings.Join(parts, " ")
	if m.scene.Nav.ToTop {
		nav += "  " + m.styles.KeyHint.Render("↑ top")
	}
	return nav
}

func (m Model) heroView() string {
	return m.styles.Label.Render("  > ") + m.styles.Value.Render(m.scene.Typed()) + m.styles.Title.Render("▌")
}

func (m Model) sliderView() string {
	sl := m.scene.Slider
	from, to := sl.VisibleRange()
	slot := max((m.width-12-2*sl.PageCount())/max(sl.Visible(), 1), 8)

	var cards []string
	for i := from; i < to; i++ {
		title := m.scene.Slides[i].Title
		if r := []rune(title); len(r) > slot-2 {
			title = string(r[:slot-3]) + "…"
		}
		cards = append(cards, m.styles.Value.Render(pad(title, slot)))
	}
	status := ""
	if !sl.Running() {
		status = m.styles.Subtle.Render(" ⏸")
	}
	return m.styles.Title.Render(" ‹ ") + strings.Join(cards, "") + status + " " +
		viz.Dots(sl.ActivePage(), sl.PageCount(), m.theme) + m.styles.Title.Render(" › ")
}

func (m Model) statusView() string {
	switch {
	case m.sending:
		return m.styles.Subtle.Render("  sending…")
	case m.result != nil && m.result.Status == contact.StatusOK:
		return "  " + m.styles.OK.Render(m.result.Text)
	case m.result != nil:
		return "  " + m.styles.Err.Render(m.result.Text)
	case m.gif != nil:
		return m.styles.Err.Render(fmt.Sprintf("  ● REC %d", m.gif.Frames()))
	case m.note != "":
		return m.styles.Subtle.Render("  " + m.note)
	}
	return m.styles.Subtle.Render("  " + contact.IdleText)
}

func (m Model) statsView() string {
	var s strings.Builder
	last := m.scene.Field.Last()
	s.WriteString(m.styles.Title.Render("FIELD") + "\n\n")
	s.WriteString(m.styles.Label.Render("particles ") + m.styles.Value.Render(fmt.Sprint(m.scene.Field.Len())) + "\n")
	s.WriteString(m.styles.Label.Render("links     ") + m.styles.Value.Render(fmt.Sprint(last.Links)) + "\n")
	s.WriteString(m.styles.Label.Render("repelled  ") + m.styles.Value.Render(fmt.Sprint(last.Repelled)) + "\n")
	s.WriteString(m.styles.Label.Render("resets    ") + m.styles.Value.Render(fmt.Sprint(last.Resets)) + "\n")
	s.WriteString(m.styles.Label.Render("frame     ") + m.styles.Value.Render(fmt.Sprint(m.scene.FrameCount())) + "\n")
	s.WriteString(m.styles.Label.Render("trend     ") + viz.SparklineChart(m.scene.LinkHistory(), statsWidth-16, m.theme) + "\n")
	s.WriteString(viz.Separator(statsWidth-6, m.theme) + "\n")

	if hist := m.scene.LinkHistory(); len(hist) > 1 {
		if len(hist) > statsWidth-10 {
			hist = hist[len(hist)-(statsWidth-10):]
		}
		chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(statsWidth-10), asciigraph.Caption("links"))
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Primary).Render(chart))
	}
	return m.styles.Panel.Width(statsWidth - 2).Render(s.String())
}

func (m Model) helpView() string {
	return m.styles.Panel.Render(`KEYBOARD & MOUSE

  mouse move    particles flee the pointer
  wheel, ↑↓     scroll the page
  1-6           jump to a section (click the nav too)
  ←→            previous / next certificate
  hover slider  pause auto-advance
  c             open the contact form
  space         freeze the animation
  s             field stats panel
  t             cycle themes
  g             start / stop GIF recording
  x             save the canvas as SVG
  ?             toggle this help
  q             quit`)
}

// Run starts the terminal page in the alternate screen with mouse motion
// reporting.
func Run(cfg *config.Config, form *contact.Form) error {
	p := tea.NewProgram(New(cfg, form), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
