package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/particles"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.Count != particles.DefaultCount {
		t.Errorf("expected %d particles, got %d", particles.DefaultCount, cfg.Particles.Count)
	}
	if cfg.Carousel.Visible != 3 || cfg.Carousel.SlideWidth != 320 {
		t.Errorf("unexpected carousel defaults %+v", cfg.Carousel)
	}
	if len(cfg.Typing.Roles) != 5 {
		t.Errorf("expected 5 roles, got %d", len(cfg.Typing.Roles))
	}
	if cfg.Contact.PublicKey != contact.PlaceholderKey {
		t.Error("default contact key should be the placeholder")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.Carousel.Options().Interval; got != 3500*time.Millisecond {
		t.Errorf("interval = %v", got)
	}
	opts := cfg.Typing.Options()
	if opts.TypeDelay != 90*time.Millisecond || opts.DeleteDelay != 52*time.Millisecond || opts.Hold != 1800*time.Millisecond {
		t.Errorf("typing options = %+v", opts)
	}
	if got, want := cfg.Particles.Params(), particles.DefaultParams(); got != want {
		t.Errorf("particle params = %+v, want %+v", got, want)
	}
	if cfg.Contact.Service().Timeout != contact.DefaultTimeout {
		t.Error("contact timeout lost in conversion")
	}
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("frame = %v", cfg.FrameDuration())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	data := "seed: 42\nparticles:\n  count: 120\ncarousel:\n  interval: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Particles.Count != 120 {
		t.Errorf("overrides lost: %+v", cfg)
	}
	if cfg.Particles.LinkRadius != particles.DefaultLinkRadius {
		t.Error("unset keys should keep defaults")
	}
	if cfg.Carousel.Options().Interval != 5*time.Second {
		t.Errorf("interval = %v", cfg.Carousel.Options().Interval)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("fps: 0\n"), 0644)
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "matrix"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Theme != "matrix" || len(back.Carousel.Slides) != len(DefaultSlides) {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.Count != 220 {
		t.Errorf("expected 220 particles, got %d", cfg.Particles.Count)
	}
	if cfg.FPS != DefaultFPS {
		t.Error("preset should keep non-particle defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	want := []string{"calm", "dense", "storm"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("presets[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
