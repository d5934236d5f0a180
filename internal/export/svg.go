package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/coreforge/internal/scene"
	"github.com/san-kum/coreforge/internal/viz"
)

// SceneToSVG writes recorded draw calls as vector SVG. Ops before the last
// clear are dropped.
func SceneToSVG(rec *scene.Recorder, width, height float64, theme viz.Theme) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	if rec == nil {
		sb.WriteString("</svg>")
		return sb.String()
	}

	ops := rec.Ops
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind == "clear" {
			ops = ops[i+1:]
			break
		}
	}

	for _, op := range ops {
		c := op.Color
		switch op.Kind {
		case "circle":
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, op.X0, op.Y0, op.Radius, hex(c), c.A)
		case "line":
			fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.3f"/>
`, op.X0, op.Y0, op.X1, op.Y1, hex(c), op.Width, c.A)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot,
// each dot as opaque as its cell's shade.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Background, theme.Primary)

	bits := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4
	top := float64(7)

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Grid[row][col] - 0x2800)
			if pattern <= 0 {
				continue
			}
			opacity := float64(canvas.Shade(canvas.Level[row][col])) / top
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&bits[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill-opacity="%.2f"/>
`, cx, cy, dotRadius, opacity)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func hex(c scene.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
