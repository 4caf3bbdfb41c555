package config

import (
	"fmt"

	"github.com/kevin-cantwell/ditherpunk"
)

// Validate checks everything the engine would otherwise silently coerce:
// colors must be valid hex, the algorithm and preset must exist.
func (s Settings) Validate() error {
	switch s.Mode {
	case ModeDither, ModeASCII:
	default:
		return fmt.Errorf("%w: mode %q, want %q or %q", ErrInvalidSetting, s.Mode, ModeDither, ModeASCII)
	}
	if _, ok := ditherpunk.KernelFor(ditherpunk.Algorithm(s.Algorithm)); !ok {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSetting, s.Algorithm)
	}
	if s.PointSize < 1 {
		return fmt.Errorf("%w: point size %d, want >= 1", ErrInvalidSetting, s.PointSize)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v, want > 0", ErrInvalidSetting, s.FontSize)
	}
	if s.Contrast < -255 || s.Contrast >= 259 {
		return fmt.Errorf("%w: contrast %v, want within [-255, 259)", ErrInvalidSetting, s.Contrast)
	}
	if s.Preset != "" {
		if _, ok := ditherpunk.PresetByName(s.Preset); !ok {
			return fmt.Errorf("%w: unknown preset %q", ErrInvalidSetting, s.Preset)
		}
	}
	for _, c := range append([]string{s.Ink, s.Bg}, s.Gradient...) {
		if c == "" {
			continue
		}
		if _, err := ditherpunk.ParseHex(c); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
		}
	}
	if s.CharSet == "" {
		return fmt.Errorf("%w: empty charset", ErrInvalidSetting)
	}
	return nil
}

// Palette resolves preset and explicit colors.
func (s Settings) Palette() ditherpunk.Palette {
	p := ditherpunk.DefaultPalette
	if preset, ok := ditherpunk.PresetByName(s.Preset); ok {
		p = preset.Palette()
	}
	if s.Ink != "" {
		p.Ink = ditherpunk.HexToRGB(s.Ink)
	}
	if s.Bg != "" {
		p.Bg = ditherpunk.HexToRGB(s.Bg)
	}
	for _, stop := range s.Gradient {
		p.Gradient = append(p.Gradient, ditherpunk.HexToRGB(stop))
	}
	return p
}

func (s Settings) Tone() ditherpunk.Tone {
	return ditherpunk.Tone{Brightness: s.Brightness, Contrast: s.Contrast, Detail: s.Detail}
}

// DitherConfig validates s and converts it for ditherpunk.Dither.
func (s Settings) DitherConfig() (ditherpunk.DitherConfig, error) {
	if err := s.Validate(); err != nil {
		return ditherpunk.DitherConfig{}, err
	}
	k, _ := ditherpunk.KernelFor(ditherpunk.Algorithm(s.Algorithm))
	return ditherpunk.DitherConfig{
		Algorithm: k.Name,
		Palette:   s.Palette(),
		Tone:      s.Tone(),
	}, nil
}

// AsciiConfig validates s and converts it for ditherpunk.RenderASCII. The
// charset may be a named set or a literal string of glyphs.
func (s Settings) AsciiConfig() (ditherpunk.AsciiConfig, error) {
	if err := s.Validate(); err != nil {
		return ditherpunk.AsciiConfig{}, err
	}
	charset, ok := ditherpunk.CharSetByName(s.CharSet)
	if !ok {
		charset = s.CharSet
	}
	p := s.Palette()
	return ditherpunk.AsciiConfig{
		FontSize:    s.FontSize,
		CharSet:     charset,
		Inverted:    s.Inverted,
		Ink:         p.Ink,
		InkGradient: p.Gradient,
		Bg:          p.Bg,
	}, nil
}
