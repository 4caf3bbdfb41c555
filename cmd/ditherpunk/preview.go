package main

import (
	"bytes"
	"image"
	"os"

	"github.com/nfnt/resize"

	"github.com/kevin-cantwell/ditherpunk"
	"github.com/kevin-cantwell/ditherpunk/internal/config"
)

// previewer renders frames as terminal text sized to the terminal.
type previewer struct {
	settings    config.Settings
	dither      ditherpunk.DitherConfig
	ascii       ditherpunk.AsciiConfig
	cols, lines int
}

func newPreviewer(settings config.Settings) (*previewer, error) {
	pv := &previewer{settings: settings}
	var err error
	if settings.Mode == config.ModeASCII {
		pv.ascii, err = settings.AsciiConfig()
	} else {
		pv.dither, err = settings.DitherConfig()
	}
	if err != nil {
		return nil, err
	}

	pv.cols, pv.lines, err = ditherpunk.TerminalSize(int(os.Stderr.Fd()))
	if err != nil || pv.cols == 0 || pv.lines == 0 {
		pv.cols, pv.lines = 80, 25 // Small, but a pretty standard default
	}
	return pv, nil
}

// background is the color frames are flattened onto.
func (pv *previewer) background() ditherpunk.RGB {
	if pv.settings.Mode == config.ModeASCII {
		return pv.ascii.Bg
	}
	return pv.dither.Palette.Bg
}

// Render draws img as braille in dither mode, or as plain text in ascii mode.
func (pv *previewer) Render(img image.Image) (string, error) {
	if pv.settings.Mode == config.ModeASCII {
		return pv.renderASCII(img), nil
	}
	return pv.renderBraille(img)
}

func (pv *previewer) renderBraille(img image.Image) (string, error) {
	// Each braille symbol is 2 pixels wide and 4 pixels high.
	img = resize.Thumbnail(uint(pv.cols*2), uint((pv.lines-1)*4), img, resize.NearestNeighbor)
	buf := ditherpunk.Dither(ditherpunk.FromImage(img), pv.dither)

	var out bytes.Buffer
	enc := ditherpunk.NewBrailleEncoder(&out, pv.dither.Palette.Bg)
	if _, err := enc.Encode(buf); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (pv *previewer) renderASCII(img image.Image) string {
	cellW := pv.ascii.FontSize * ditherpunk.CellAspect
	cellH := pv.ascii.FontSize
	img = resize.Thumbnail(uint(float64(pv.cols)*cellW), uint(float64(pv.lines-1)*cellH), img, resize.Bilinear)

	buf := ditherpunk.FromImage(img)
	pv.settings.Tone().Apply(buf)
	return ditherpunk.SampleGrid(buf, pv.ascii).String()
}
