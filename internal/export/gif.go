package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"os"

	"github.com/san-kum/coreforge/internal/scene"
)

const gifLevels = 16

// GIFRecorder is a Surface that rasterises every frame into a paletted
// image. Each Clear starts a new frame.
type GIFRecorder struct {
	W, H      int
	Delay     int // per frame, in 1/100 s
	Gain      float64
	MaxFrames int

	sx, sy  float64
	palette color.Palette
	cur     *image.Paletted
	frames  []*image.Paletted
}

// NewGIFRecorder records a page of pageW x pageH pixels into w x h frames.
func NewGIFRecorder(w, h int, pageW, pageH float64, bg, fg color.RGBA) *GIFRecorder {
	pal := make(color.Palette, gifLevels)
	for i := range pal {
		f := float64(i) / float64(gifLevels-1)
		pal[i] = color.RGBA{
			R: mix(bg.R, fg.R, f),
			G: mix(bg.G, fg.G, f),
			B: mix(bg.B, fg.B, f),
			A: 255,
		}
	}
	return &GIFRecorder{
		W: w, H: h,
		Delay:     2,
		Gain:      3,
		MaxFrames: 600,
		sx:        float64(w) / pageW,
		sy:        float64(h) / pageH,
		palette:   pal,
	}
}

func (g *GIFRecorder) Clear() {
	g.flush()
	g.cur = image.NewPaletted(image.Rect(0, 0, g.W, g.H), g.palette)
}

func (g *GIFRecorder) FillCircle(x, y, r float64, c scene.Color) {
	if g.cur == nil {
		g.Clear()
	}
	cx, cy := x*g.sx, y*g.sy
	rad := r * math.Max(g.sx, g.sy)
	if rad < 1 {
		g.plot(int(cx), int(cy), c.A)
		return
	}
	ir := int(math.Ceil(rad))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= rad*rad {
				g.plot(int(cx)+dx, int(cy)+dy, c.A)
			}
		}
	}
}

func (g *GIFRecorder) StrokeLine(x0, y0, x1, y1, width float64, c scene.Color) {
	if g.cur == nil {
		g.Clear()
	}
	ax, ay := x0*g.sx, y0*g.sy
	bx, by := x1*g.sx, y1*g.sy
	steps := int(math.Max(math.Abs(bx-ax), math.Abs(by-ay)))
	if steps == 0 {
		g.plot(int(ax), int(ay), c.A)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.plot(int(ax+(bx-ax)*t), int(ay+(by-ay)*t), c.A)
	}
}

// plot raises the pixel to the palette level of alpha a; overlapping draws
// keep the brightest.
func (g *GIFRecorder) plot(x, y int, a float64) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	v := math.Min(1, a*g.Gain)
	if v <= 0 {
		return
	}
	idx := uint8(math.Ceil(v * float64(gifLevels-1)))
	if idx > g.cur.ColorIndexAt(x, y) {
		g.cur.SetColorIndex(x, y, idx)
	}
}

func (g *GIFRecorder) flush() {
	if g.cur == nil {
		return
	}
	if g.MaxFrames <= 0 || len(g.frames) < g.MaxFrames {
		g.frames = append(g.frames, g.cur)
	}
	g.cur = nil
}

// Frames returns the number of completed frames, including the one in
// progress.
func (g *GIFRecorder) Frames() int {
	n := len(g.frames)
	if g.cur != nil {
		n++
	}
	return n
}

func (g *GIFRecorder) Encode(w io.Writer) error {
	g.flush()
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Encode(f)
}

func mix(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + f*(float64(b)-float64(a)))
}
