package config

import "sort"

// Presets tune the particle field only; everything else keeps its defaults.
var Presets = map[string]ParticlesConfig{
	"calm": {
		Count: 40, Speed: 0.15, RepelRadius: 60, LinkRadius: 110, LinkAlpha: 0.05,
		Radius: 1, LineWidth: 0.5, AlphaMin: 0.05, AlphaSpan: 0.15,
	},
	"dense": {
		Count: 220, Speed: 0.3, RepelRadius: 90, LinkRadius: 90, LinkAlpha: 0.07,
		Radius: 1, LineWidth: 0.5, AlphaMin: 0.05, AlphaSpan: 0.22, GridThreshold: 150,
	},
	"storm": {
		Count: 600, Speed: 1.2, RepelRadius: 140, LinkRadius: 70, LinkAlpha: 0.1,
		Radius: 1.2, LineWidth: 0.6, AlphaMin: 0.08, AlphaSpan: 0.3, GridThreshold: 300,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Particles = p
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
