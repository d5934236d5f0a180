package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coreforge/internal/carousel"
	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/effects"
	"github.com/san-kum/coreforge/internal/particles"
	"github.com/san-kum/coreforge/internal/scene"
)

const (
	DefaultFPS        = 60
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
	DefaultTheme      = "coreforge"
	DefaultOwner      = "CoreForge"
	DefaultTo         = "contact@coreforge.dev"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Seed      int64           `yaml:"seed"`
	FPS       int             `yaml:"fps"`
	Theme     string          `yaml:"theme"`
	Particles ParticlesConfig `yaml:"particles"`
	Carousel  CarouselConfig  `yaml:"carousel"`
	Typing    TypingConfig    `yaml:"typing"`
	Contact   ContactConfig   `yaml:"contact"`
	Viewport  ViewportConfig  `yaml:"viewport"`
}

type ParticlesConfig struct {
	Count         int     `yaml:"count"`
	Speed         float64 `yaml:"speed"`
	RepelRadius   float64 `yaml:"repel_radius"`
	LinkRadius    float64 `yaml:"link_radius"`
	LinkAlpha     float64 `yaml:"link_alpha"`
	Radius        float64 `yaml:"radius"`
	LineWidth     float64 `yaml:"line_width"`
	AlphaMin      float64 `yaml:"alpha_min"`
	AlphaSpan     float64 `yaml:"alpha_span"`
	GridThreshold int     `yaml:"grid_threshold"`
}

type Slide struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
}

type CarouselConfig struct {
	Visible    int     `yaml:"visible"`
	SlideWidth float64 `yaml:"slide_width"`
	Interval   float64 `yaml:"interval"` // seconds
	Slides     []Slide `yaml:"slides"`
}

type TypingConfig struct {
	Roles       []string `yaml:"roles"`
	TypeDelay   float64  `yaml:"type_delay"`   // seconds
	DeleteDelay float64  `yaml:"delete_delay"` // seconds
	Hold        float64  `yaml:"hold"`         // seconds
}

type ContactConfig struct {
	To         string  `yaml:"to"`
	Owner      string  `yaml:"owner"`
	PublicKey  string  `yaml:"public_key"`
	ServiceID  string  `yaml:"service_id"`
	TemplateID string  `yaml:"template_id"`
	Endpoint   string  `yaml:"endpoint"`
	Timeout    float64 `yaml:"timeout"` // seconds
}

// ViewportConfig maps terminal cells to page pixels.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

var DefaultSlides = []Slide{
	{Title: "Java SE Fundamentals", Issuer: "Oracle Academy"},
	{Title: "Data Structures & Algorithms", Issuer: "NPTEL"},
	{Title: "Object-Oriented Design", Issuer: "Coursera"},
	{Title: "Git & GitHub Essentials", Issuer: "GitHub Skills"},
	{Title: "SQL for Developers", Issuer: "HackerRank"},
	{Title: "REST API Design", Issuer: "Postman Academy"},
	{Title: "Intro to Machine Learning", Issuer: "Kaggle"},
	{Title: "Cloud Foundations", Issuer: "AWS Academy"},
}

func DefaultConfig() *Config {
	p := particles.DefaultParams()
	return &Config{
		Seed:  1,
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
		Particles: ParticlesConfig{
			Count:         p.Count,
			Speed:         p.Speed,
			RepelRadius:   p.RepelRadius,
			LinkRadius:    p.LinkRadius,
			LinkAlpha:     p.LinkAlpha,
			Radius:        p.Radius,
			LineWidth:     p.LineWidth,
			AlphaMin:      p.AlphaMin,
			AlphaSpan:     p.AlphaSpan,
			GridThreshold: p.GridThreshold,
		},
		Carousel: CarouselConfig{
			Visible:    carousel.DefaultVisible,
			SlideWidth: carousel.DefaultSlideWidth,
			Interval:   carousel.DefaultInterval.Seconds(),
			Slides:     append([]Slide(nil), DefaultSlides...),
		},
		Typing: TypingConfig{
			Roles:       append([]string(nil), effects.DefaultRoles...),
			TypeDelay:   effects.DefaultTypeDelay.Seconds(),
			DeleteDelay: effects.DefaultDeleteDelay.Seconds(),
			Hold:        effects.DefaultHold.Seconds(),
		},
		Contact: ContactConfig{
			To:        DefaultTo,
			Owner:     DefaultOwner,
			PublicKey: contact.PlaceholderKey,
			Endpoint:  contact.DefaultEndpoint,
			Timeout:   contact.DefaultTimeout.Seconds(),
		},
		Viewport: ViewportConfig{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalid)
	case c.Particles.Count < 0:
		return fmt.Errorf("%w: particles.count must not be negative", ErrInvalid)
	case c.Particles.LinkRadius <= 0 || c.Particles.RepelRadius < 0:
		return fmt.Errorf("%w: particle radii", ErrInvalid)
	case c.Carousel.Visible <= 0 || c.Carousel.SlideWidth <= 0 || c.Carousel.Interval <= 0:
		return fmt.Errorf("%w: carousel visible, slide_width and interval must be positive", ErrInvalid)
	case c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0:
		return fmt.Errorf("%w: viewport cell size", ErrInvalid)
	}
	return nil
}

func (c *Config) FrameDuration() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

func (p ParticlesConfig) Params() particles.Params {
	return particles.Params{
		Count:         p.Count,
		Speed:         p.Speed,
		RepelRadius:   p.RepelRadius,
		LinkRadius:    p.LinkRadius,
		LinkAlpha:     p.LinkAlpha,
		Radius:        p.Radius,
		LineWidth:     p.LineWidth,
		AlphaMin:      p.AlphaMin,
		AlphaSpan:     p.AlphaSpan,
		GridThreshold: p.GridThreshold,
		Color:         scene.RGBA(0, 240, 255, 1),
	}
}

func (c CarouselConfig) Options() carousel.Options {
	return carousel.Options{
		Visible:    c.Visible,
		SlideWidth: c.SlideWidth,
		Interval:   seconds(c.Interval),
	}
}

func (t TypingConfig) Options() effects.TypingOptions {
	return effects.TypingOptions{
		TypeDelay:   seconds(t.TypeDelay),
		DeleteDelay: seconds(t.DeleteDelay),
		Hold:        seconds(t.Hold),
	}
}

func (c ContactConfig) Service() contact.ServiceConfig {
	return contact.ServiceConfig{
		Endpoint:   c.Endpoint,
		PublicKey:  c.PublicKey,
		ServiceID:  c.ServiceID,
		TemplateID: c.TemplateID,
		Timeout:    seconds(c.Timeout),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
