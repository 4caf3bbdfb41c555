package ditherpunk

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font/gofont/gomono"
)

// glyphFont is the monospace face used for ASCII render targets.
var glyphFont = draw2d.FontData{
	Name:   "gomono",
	Family: draw2d.FontFamilyMono,
	Style:  draw2d.FontStyleNormal,
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func loadMono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
		if monoErr == nil {
			draw2d.RegisterFont(glyphFont, monoFont)
		}
	})
	return monoFont, monoErr
}

// ascent returns the distance in pixels from the top of a line of text to its
// baseline for a face size px tall.
func ascent(f *truetype.Font, px float64) float64 {
	face := truetype.NewFace(f, &truetype.Options{Size: px, DPI: 72})
	defer face.Close()
	return float64(face.Metrics().Ascent.Ceil())
}

func nrgba(c RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// drawGrid paints bg over dst and then every glyph of g at its cell origin.
func drawGrid(dst *Buffer, g Grid, fontSize float64, bg RGB) error {
	dst.Fill(bg)
	if g.Rows() == 0 {
		return nil
	}

	f, err := loadMono()
	if err != nil {
		return err
	}

	// dst is opaque from here on, so its bytes read the same premultiplied.
	img := &image.RGBA{
		Pix:    dst.Pix,
		Stride: dst.Width * 4,
		Rect:   image.Rect(0, 0, dst.Width, dst.Height),
	}
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetDPI(72)
	gc.SetFontData(glyphFont)
	gc.SetFontSize(fontSize)
	baseline := ascent(f, fontSize)

	for row, line := range g.Cells {
		gc.SetFillColor(nrgba(g.Ink[row]))
		y := float64(row)*g.CellHeight + baseline
		for col, r := range line {
			if r == ' ' {
				continue
			}
			gc.FillStringAt(string(r), float64(col)*g.CellWidth, y)
		}
	}
	return nil
}
