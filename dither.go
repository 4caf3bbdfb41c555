package ditherpunk

import "go.uber.org/zap"

// Palette is the two-color output palette. When Gradient holds at least one
// stop the ink color is taken from it per row, Interpolate(Gradient, y/H),
// and Ink is ignored.
type Palette struct {
	Ink      RGB
	Bg       RGB
	Gradient []RGB
}

// DefaultPalette is black ink on white.
var DefaultPalette = Palette{Ink: Black, Bg: White}

// IsGradient reports whether the ink color varies per row.
func (p Palette) IsGradient() bool {
	return len(p.Gradient) > 0
}

// InkAt returns the ink color for row y of a buffer h rows tall.
func (p Palette) InkAt(y, h int) RGB {
	if !p.IsGradient() || h <= 0 {
		return p.Ink
	}
	return Interpolate(p.Gradient, float64(y)/float64(h))
}

// closest returns ink unless bg is strictly nearer to c.
func closest(c, ink, bg RGB) RGB {
	if Distance(c, bg) < Distance(c, ink) {
		return bg
	}
	return ink
}

// DitherConfig configures Dither.
type DitherConfig struct {
	Algorithm Algorithm
	Palette   Palette
	Tone
}

/*
Dither tone-adjusts a copy of buf and then reduces it to the palette by error
diffusion. buf itself is left untouched.

Pixels are visited left to right, top to bottom. Each pixel is replaced by the
nearer of ink and bg and the difference is pushed to its unvisited neighbors
according to the kernel, clamping every write. Because the kernels only reach
forward, a pixel is never changed after it has been quantized and the output
depends on this exact order.

Unknown algorithm names fall back to Floyd-Steinberg. An empty buffer comes
back as an empty buffer of the same dimensions.
*/
func Dither(buf *Buffer, cfg DitherConfig) *Buffer {
	if buf.Empty() {
		if buf == nil {
			return NewBuffer(0, 0)
		}
		return NewBuffer(buf.Width, buf.Height)
	}

	kernel, ok := KernelFor(cfg.Algorithm)
	if !ok {
		Logger().Debug("unknown dither algorithm, using default",
			zap.String("algorithm", string(cfg.Algorithm)),
			zap.String("default", string(kernel.Name)))
	}

	out := cfg.Tone.Adjust(buf)
	diffuse(out, kernel, cfg.Palette)

	Logger().Debug("dithered",
		zap.String("algorithm", string(kernel.Name)),
		zap.Int("width", out.Width),
		zap.Int("height", out.Height),
		zap.Bool("gradient", cfg.Palette.IsGradient()))
	return out
}

func diffuse(buf *Buffer, kernel Kernel, palette Palette) {
	w, h := buf.Width, buf.Height
	pix := buf.Pix
	div := float64(kernel.Divisor)

	for y := 0; y < h; y++ {
		ink := palette.InkAt(y, h)
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			old := RGB{pix[i], pix[i+1], pix[i+2]}
			q := closest(old, ink, palette.Bg)
			pix[i], pix[i+1], pix[i+2] = q.R, q.G, q.B

			er := float64(old.R) - float64(q.R)
			eg := float64(old.G) - float64(q.G)
			eb := float64(old.B) - float64(q.B)
			if er == 0 && eg == 0 && eb == 0 {
				continue
			}

			for _, tap := range kernel.Taps {
				nx, ny := x+tap.DX, y+tap.DY
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				f := float64(tap.Weight) / div
				j := (ny*w + nx) * 4
				pix[j] = clamp8(float64(pix[j]) + er*f)
				pix[j+1] = clamp8(float64(pix[j+1]) + eg*f)
				pix[j+2] = clamp8(float64(pix[j+2]) + eb*f)
			}
		}
	}
}
