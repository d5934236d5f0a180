package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/coreforge/internal/scene"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBlank = 0x2800
	shadeLevels  = 8
)

// Canvas is a braille surface. Page pixels are scaled onto a grid of
// Width*2 x Height*4 dots, and each cell keeps the strongest alpha drawn
// into it so Render can shade it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Level         [][]float64

	// Gain multiplies alpha before shading. Page alphas are faint and a
	// terminal cell is coarse, so the default lifts them.
	Gain float64

	sx, sy float64
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Level:  make([][]float64, h),
		Gain:   4,
		sx:     1,
		sy:     1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// Scale maps a page of worldW x worldH pixels onto the dot grid.
func (c *Canvas) Scale(worldW, worldH float64) {
	if worldW > 0 {
		c.sx = worldW / float64(c.Width*2)
	}
	if worldH > 0 {
		c.sy = worldH / float64(c.Height*4)
	}
}

// Dots returns the dot-grid size.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) { c.SetAlpha(x, y, 1) }

// SetAlpha turns on a dot and raises its cell's shade to at least a.
func (c *Canvas) SetAlpha(x, y int, a float64) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if a > c.Level[row][col] {
		c.Level[row][col] = a
	}
}

func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < brailleBlank {
		c.Grid[row][col] = brailleBlank
	}
	if c.Grid[row][col] == brailleBlank {
		c.Level[row][col] = 0
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Level[i][j] = 0
		}
	}
}

// DrawLine draws a line in dot coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, a float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetAlpha(x0, y0, a)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) toDot(x, y float64) (int, int) {
	return int(math.Floor(x / c.sx)), int(math.Floor(y / c.sy))
}

// FillCircle implements scene.Surface. Circles under one dot become a dot.
func (c *Canvas) FillCircle(x, y, r float64, col scene.Color) {
	cx, cy := c.toDot(x, y)
	rx, ry := r/c.sx, r/c.sy
	if rx < 1 && ry < 1 {
		c.SetAlpha(cx, cy, col.A)
		return
	}
	ix, iy := int(math.Ceil(rx)), int(math.Ceil(ry))
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny <= 1 {
				c.SetAlpha(cx+dx, cy+dy, col.A)
			}
		}
	}
}

// StrokeLine implements scene.Surface. Width is ignored; every line is one
// dot wide.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col scene.Color) {
	ax, ay := c.toDot(x0, y0)
	bx, by := c.toDot(x1, y1)
	c.DrawLine(ax, ay, bx, by, col.A)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Shade maps an alpha to one of the shade levels, 0 meaning blank.
func (c *Canvas) Shade(a float64) int {
	v := a * c.Gain
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return shadeLevels - 1
	}
	lvl := int(math.Ceil(v * float64(shadeLevels-1)))
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

// Render draws the grid with each cell blended from the theme background
// toward its primary colour by the cell's shade. Runs of equal shade share
// one style call.
func (c *Canvas) Render(t Theme) string {
	styles := make([]lipgloss.Style, shadeLevels)
	for i := range styles {
		f := float64(i) / float64(shadeLevels-1)
		styles[i] = lipgloss.NewStyle().Foreground(blend(t.Background, t.Primary, f))
	}

	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Shade(c.Level[i][j]) == c.Shade(c.Level[i][start]) {
				continue
			}
			b.WriteString(styles[c.Shade(c.Level[i][start])].Render(string(row[start:j])))
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
