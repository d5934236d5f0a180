package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/coreforge/internal/config"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/scene"
)

const frame = time.Second / 60

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := New(config.DefaultConfig(), nil)
	s.Resize(1280, 800)
	return s
}

func TestScene_ResizeSeedsField(t *testing.T) {
	s := newTestScene(t)
	if s.Field.Len() != 70 {
		t.Errorf("expected 70 particles, got %d", s.Field.Len())
	}
	if w, h := s.Field.Size(); w != 1280 || h != 800 {
		t.Errorf("field size = %vx%v", w, h)
	}
	if len(s.Tilts) != len(DefaultProjects) {
		t.Errorf("tilts = %d", len(s.Tilts))
	}
}

func TestScene_SliderAutoAdvances(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 211; i++ { // just over 3.5s
		s.Frame(frame)
	}
	if s.Slider.Current() != 1 {
		t.Errorf("slider at %d, want 1", s.Slider.Current())
	}
}

func TestScene_HoverPausesSlider(t *testing.T) {
	s := newTestScene(t)
	s.JumpTo("certificates")
	c := s.Layout.Slider.Center()
	s.MovePointer(c.X, c.Y-s.ScrollY())
	if s.Slider.Running() {
		t.Fatal("hovering the slider should pause it")
	}
	if !s.Cursor.Hover {
		t.Error("cursor should morph over the slider")
	}
	for i := 0; i < 600; i++ {
		s.Frame(frame)
	}
	if s.Slider.Current() != 0 {
		t.Errorf("paused slider moved to %d", s.Slider.Current())
	}

	s.LeavePointer()
	if !s.Slider.Running() || s.Clock.Active() != 1 {
		t.Error("leaving should resume with exactly one timer")
	}
}

func TestScene_ScrollAwayResumesSlider(t *testing.T) {
	s := newTestScene(t)
	s.JumpTo("certificates")
	c := s.Layout.Slider.Center()
	s.MovePointer(c.X, c.Y-s.ScrollY())
	if s.Slider.Running() {
		t.Fatal("hovering the slider should pause it")
	}

	s.ScrollTo(0)
	if s.Slider.Hovered() || !s.Slider.Running() {
		t.Error("scrolling the slider out from under the pointer should resume it")
	}
	if s.Clock.Active() != 1 {
		t.Errorf("expected one timer, got %d", s.Clock.Active())
	}
	if s.Cursor.Hover {
		t.Error("cursor should drop its hover state")
	}

	s.JumpTo("certificates")
	if !s.Slider.Hovered() || s.Slider.Running() {
		t.Error("scrolling the slider back under the pointer should pause it")
	}
}

func TestScene_ScrollAwayClearsTilt(t *testing.T) {
	s := newTestScene(t)
	s.JumpTo("projects")
	card := s.Layout.Cards[0]
	s.MovePointer(card.X+card.W/4, card.Y+card.H/4-s.ScrollY())
	if s.Tilts[0].IsZero() {
		t.Fatal("pointer over the card should tilt it")
	}

	s.ScrollTo(0)
	for i, tl := range s.Tilts {
		if !tl.IsZero() {
			t.Errorf("card %d still tilted after scrolling away: %+v", i, tl)
		}
	}
}

func TestScene_ScrollNavAndReveal(t *testing.T) {
	s := newTestScene(t)
	if s.Nav.Slim || s.Nav.Active != "home" {
		t.Errorf("initial nav = %+v", s.Nav)
	}

	s.JumpTo("skills")
	if !s.Nav.Slim || s.Nav.Active != "skills" {
		t.Errorf("nav at skills = %+v", s.Nav)
	}
	it, _ := s.Reveal.Item("skills")
	if !it.Revealed || it.Bars[0].Width != DefaultSkills[0].Percent {
		t.Errorf("skills not revealed: %+v", it)
	}
	if c, _ := s.Reveal.Item("contact"); c.Revealed {
		t.Error("contact is far below and should stay hidden")
	}

	s.Scroll(1e9)
	if s.ScrollY() != s.Layout.MaxScroll() || s.Nav.Progress != 100 {
		t.Errorf("scroll clamp: y=%v progress=%v", s.ScrollY(), s.Nav.Progress)
	}
	s.Scroll(-1e9)
	if s.ScrollY() != 0 {
		t.Errorf("scroll should clamp at 0, got %v", s.ScrollY())
	}
}

func TestScene_TiltCards(t *testing.T) {
	s := newTestScene(t)
	s.JumpTo("projects")
	card := s.Layout.Cards[1]
	s.MovePointer(card.X+1, card.Y+1-s.ScrollY())
	if s.Tilts[1].IsZero() || !s.Tilts[0].IsZero() {
		t.Errorf("tilts = %+v", s.Tilts)
	}
	s.LeavePointer()
	if !s.Tilts[1].IsZero() {
		t.Error("leaving resets tilt")
	}
}

func TestScene_FrameAndDraw(t *testing.T) {
	s := newTestScene(t)
	s.Frame(0)
	if s.Typed() != "J" {
		t.Errorf("typed = %q", s.Typed())
	}

	rec := &scene.Recorder{}
	links := s.Draw(rec)
	if rec.Count("circle") != 70 || rec.Count("line") != links {
		t.Errorf("ops: %d circles, %d lines, %d links", rec.Count("circle"), rec.Count("line"), links)
	}
	if len(s.LinkHistory()) != 1 {
		t.Error("draw should record link history")
	}
}

func TestScene_Spotlight(t *testing.T) {
	s := newTestScene(t)
	if s.SpotAlpha(0, 0) != 0 {
		t.Error("no glow without a pointer")
	}
	s.MovePointer(100, 100)
	if a := s.SpotAlpha(100, 100); a != s.Spot.Peak {
		t.Errorf("alpha under pointer = %v", a)
	}
}

func TestScene_SubmitWithoutForm(t *testing.T) {
	s := newTestScene(t)
	_, err := s.Submit(context.Background(), contact.Params{})
	if !errors.Is(err, contact.ErrOpen) {
		t.Errorf("err = %v", err)
	}
}

func TestScene_DrawOverlay(t *testing.T) {
	s := newTestScene(t)
	s.JumpTo("certificates")

	rec := &scene.Recorder{}
	s.DrawOverlay(rec)
	if got := rec.Count("circle"); got != s.Slider.PageCount() {
		t.Errorf("circles = %d, want one per page dot (%d)", got, s.Slider.PageCount())
	}
	if rec.Count("line") == 0 {
		t.Error("slider frame missing")
	}

	rec = &scene.Recorder{}
	s.MovePointer(10, 10)
	s.DrawOverlay(rec)
	if got := rec.Count("circle"); got != s.Slider.PageCount()+1 {
		t.Errorf("circles = %d, want dots plus cursor", got)
	}
}
