package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func newTestModel(t *testing.T, form *contact.Form) Model {
	t.Helper()
	m := New(config.DefaultConfig(), form)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestModel_LayoutSizesScene(t *testing.T) {
	m := newTestModel(t, nil)
	if m.canvasRows != 40-headerRows-footerRows || m.canvasCols != 120 {
		t.Errorf("canvas = %dx%d", m.canvasCols, m.canvasRows)
	}
	if w, h := m.scene.Field.Size(); w != 120*8 || h != 34*16 {
		t.Errorf("field = %vx%v", w, h)
	}
}

func TestModel_TickAdvancesAndRenders(t *testing.T) {
	m := newTestModel(t, nil)
	now := time.Now()
	m, cmd := update(t, m, tickMsg(now))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(t, m, tickMsg(now.Add(16*time.Millisecond)))
	if m.scene.FrameCount() != 2 {
		t.Errorf("frames = %d", m.scene.FrameCount())
	}
	if m.scene.Typed() == "" {
		t.Error("hero should start typing")
	}
	if v := m.View(); !strings.Contains(v, "certificates") {
		t.Error("view should carry the nav")
	}
}

func TestModel_PauseFreezesFrames(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tickMsg(time.Now()))
	if m.scene.FrameCount() != 0 {
		t.Errorf("paused model stepped %d frames", m.scene.FrameCount())
	}
}

func TestModel_KeysDriveSliderAndNav(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, key("right"))
	m, _ = update(t, m, key("right"))
	if m.scene.Slider.Current() != 2 {
		t.Errorf("slider = %d", m.scene.Slider.Current())
	}
	m, _ = update(t, m, key("left"))
	if m.scene.Slider.Current() != 1 {
		t.Errorf("slider = %d", m.scene.Slider.Current())
	}

	m, _ = update(t, m, key("3"))
	if m.scene.Nav.Active != "skills" {
		t.Errorf("active = %q", m.scene.Nav.Active)
	}
}

func TestModel_MouseMovesPointerAndScrolls(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: headerRows + 5, Action: tea.MouseActionMotion})
	if !m.scene.Pointer.Inside {
		t.Fatal("pointer should be inside")
	}
	if want := 10.5 * 8; m.scene.Pointer.X != want {
		t.Errorf("pointer x = %v, want %v", m.scene.Pointer.X, want)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.scene.ScrollY() != scrollStep*16 {
		t.Errorf("scroll = %v", m.scene.ScrollY())
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: m.canvasRows + headerRows + 1, Action: tea.MouseActionMotion})
	if m.scene.Pointer.Inside || m.scene.Slider.Running() {
		t.Error("slider row should pause the slider and release the field")
	}
}

func TestModel_NavClick(t *testing.T) {
	m := newTestModel(t, nil)
	x := strings.Index("COREFORGE  home   about   skills ", "skills")
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.scene.Nav.Active != "skills" {
		t.Errorf("nav click landed on %q", m.scene.Nav.Active)
	}
}

func TestModel_ContactFlow(t *testing.T) {
	var opened string
	form := contact.NewForm("me@example.com", "Owner", nil, contact.OpenerFunc(func(link string) error {
		opened = link
		return nil
	}))
	m := newTestModel(t, form)

	m, _ = update(t, m, key("c"))
	if !m.editing || m.scene.Nav.Active != "contact" {
		t.Fatal("c should open the contact form")
	}
	for _, s := range []string{"Ada", "tab", "ada@example.com", "tab", "Hi", "tab", "Hello"} {
		m, _ = update(t, m, key(s))
	}
	m, cmd := update(t, m, key("enter"))
	if cmd == nil || !m.sending {
		t.Fatal("enter on the message should send")
	}

	sent := cmd().(sentMsg)
	if sent.err != nil || sent.res.Status != contact.StatusOK || opened == "" {
		t.Fatalf("sent = %+v, opened %q", sent, opened)
	}
	m, cmd = update(t, m, sent)
	if m.result == nil || m.sending || cmd == nil {
		t.Fatal("result should show and schedule a reset")
	}
	if !strings.Contains(m.View(), contact.OpenText) {
		t.Error("status should show the result text")
	}

	m, _ = update(t, m, resetMsg{seq: m.resultID})
	if m.result != nil || m.input.values[fieldName] != "" {
		t.Error("an ok result should clear the form on reset")
	}
}

func TestModel_StaleResetIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, sentMsg{res: contact.Result{Status: contact.StatusErr, Text: contact.ErrText}})
	m, _ = update(t, m, sentMsg{res: contact.Result{Status: contact.StatusErr, Text: contact.ErrText}})
	m, _ = update(t, m, resetMsg{seq: 1})
	if m.result == nil {
		t.Error("an older reset must not clear a newer result")
	}
	m.input.values[fieldName] = "kept"
	m, _ = update(t, m, resetMsg{seq: 2})
	if m.result != nil || m.input.values[fieldName] != "kept" {
		t.Error("err results keep the typed fields")
	}
}

func TestModel_InvalidInputStaysInForm(t *testing.T) {
	form := contact.NewForm("me@example.com", "Owner", nil, nil)
	m := newTestModel(t, form)
	m, _ = update(t, m, key("c"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.sending || m.input.err == "" {
		t.Error("empty form should fail validation without sending")
	}
	m, _ = update(t, m, key("esc"))
	if m.editing {
		t.Error("esc should close the form")
	}
}

func TestContactForm_Editing(t *testing.T) {
	var f contactForm
	f.update(key("ab"))
	f.update(key("backspace"))
	if f.values[fieldName] != "a" {
		t.Errorf("name = %q", f.values[fieldName])
	}
	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != fieldMessage {
		t.Errorf("shift+tab should wrap to the message, got %d", f.focus)
	}
	f.update(key("x"))
	f.update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	f.update(key("y"))
	if got := f.params().Message; got != "x\ny" {
		t.Errorf("message = %q", got)
	}
}

func TestModel_SaveSVG(t *testing.T) {
	m := newTestModel(t, nil)
	m.svgPath = filepath.Join(t.TempDir(), "page.svg")
	m, _ = update(t, m, tickMsg(time.Now()))
	m, _ = update(t, m, key("x"))

	data, err := os.ReadFile(m.svgPath)
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("svg has no dots")
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("status line should report the save")
	}
}
