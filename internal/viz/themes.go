package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette shared by the terminal page and the window frontends.
type Theme struct {
	Name       string
	Primary    lipgloss.Color // particles, links, active dot
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeCoreforge = Theme{
		Name:       "coreforge",
		Primary:    lipgloss.Color("#00f0ff"),
		Secondary:  lipgloss.Color("#7b61ff"),
		Accent:     lipgloss.Color("#ff2e88"),
		Background: lipgloss.Color("#05060f"),
		Text:       lipgloss.Color("#e6f7ff"),
		Muted:      lipgloss.Color("#5a6b80"),
		Success:    lipgloss.Color("#00ff9c"),
		Error:      lipgloss.Color("#ff4d6d"),
	}

	ThemeMatrix = Theme{
		Name:       "matrix",
		Primary:    lipgloss.Color("#00ff41"),
		Secondary:  lipgloss.Color("#008f11"),
		Accent:     lipgloss.Color("#b6ffb0"),
		Background: lipgloss.Color("#000d02"),
		Text:       lipgloss.Color("#c8ffc8"),
		Muted:      lipgloss.Color("#1f5f2a"),
		Success:    lipgloss.Color("#7dff7d"),
		Error:      lipgloss.Color("#ff3b3b"),
	}

	ThemeEmber = Theme{
		Name:       "ember",
		Primary:    lipgloss.Color("#ff8a3d"),
		Secondary:  lipgloss.Color("#ffd166"),
		Accent:     lipgloss.Color("#ef476f"),
		Background: lipgloss.Color("#140805"),
		Text:       lipgloss.Color("#fff1e6"),
		Muted:      lipgloss.Color("#7a5546"),
		Success:    lipgloss.Color("#06d6a0"),
		Error:      lipgloss.Color("#ff3b3b"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#bbbbbb"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#777777"),
		Success:    lipgloss.Color("#00dd66"),
		Error:      lipgloss.Color("#ff3333"),
	}

	Themes = []Theme{
		ThemeCoreforge,
		ThemeMatrix,
		ThemeEmber,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to coreforge.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCoreforge
}

// NextTheme returns the theme after current in Themes, cycling.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// RGB returns the colour components of a "#rrggbb" theme colour.
func RGB(c lipgloss.Color) (r, g, b uint8) {
	ri, gi, bi := parseHex(string(c))
	return uint8(ri), uint8(gi), uint8(bi)
}
