package ditherpunk

import (
	"sort"
	"strings"
)

// Preset is a named ink/bg pair.
type Preset struct {
	Name string
	Ink  RGB
	Bg   RGB
}

// Palette returns the preset as a solid palette.
func (p Preset) Palette() Palette {
	return Palette{Ink: p.Ink, Bg: p.Bg}
}

var presets = map[string]Preset{}

func init() {
	for _, p := range []struct{ name, ink, bg string }{
		{"classic", "#000000", "#ffffff"},
		{"navy-amber", "#1a237e", "#ffc107"},
		{"crimson-cream", "#b71c1c", "#fff9c4"},
		{"violet-rose", "#4a148c", "#f8bbd0"},
		{"forest-mint", "#1b5e20", "#e8f5e9"},
		{"indigo-lavender", "#311b92", "#d1c4e9"},
		{"rust-peach", "#bf360c", "#ffccbc"},
	} {
		presets[p.name] = Preset{Name: p.name, Ink: HexToRGB(p.ink), Bg: HexToRGB(p.bg)}
	}
}

// PresetByName looks up a palette preset, case-insensitively.
func PresetByName(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

// PresetNames returns the preset names sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
