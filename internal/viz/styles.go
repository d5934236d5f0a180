package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are built from a theme so that cycling themes restyles everything.
type Styles struct {
	Panel      lipgloss.Style
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	KeyHint    lipgloss.Style
	Active     lipgloss.Style
	Value      lipgloss.Style
	Label      lipgloss.Style
	OK         lipgloss.Style
	Err        lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Primary),
		Value: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		OK:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Err:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Muted),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Primary),
	}
}

// GradientText colours text rune by rune from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		f := 0.0
		if len(runes) > 1 {
			f = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(blend(start, end, f)).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders percent (0..100) as a bar of width cells.
func ProgressBar(percent float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("─", width-filled))
}

// SparklineChart renders the last width values as a mini chart.
func SparklineChart(values []float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		b.WriteRune(chars[idx])
	}
	return lipgloss.NewStyle().Foreground(t.Primary).Render(b.String())
}

// Dots renders the slider page dots.
func Dots(active, count int, t Theme) string {
	on := lipgloss.NewStyle().Foreground(t.Primary).Render("●")
	off := lipgloss.NewStyle().Foreground(t.Muted).Render("○")
	parts := make([]string, count)
	for i := range parts {
		parts[i] = off
		if i == active {
			parts[i] = on
		}
	}
	return strings.Join(parts, " ")
}

func Separator(width int, t Theme) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	line := strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(line)
}

func blend(a, b lipgloss.Color, f float64) lipgloss.Color {
	ar, ag, ab := parseHex(string(a))
	br, bg, bb := parseHex(string(b))
	mix := func(x, y int) int { return x + int(f*float64(y-x)) }
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb)))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
