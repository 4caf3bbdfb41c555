package ditherpunk

import (
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// DefaultPointSize is the pixelation granularity used when none is given.
const DefaultPointSize = 6

/*
Pixelate dithers img at a coarser resolution so every output dot covers
pointSize x pointSize pixels. The image is shrunk to floor(W/pointSize) by
floor(H/pointSize), dithered, then blown back up to W x H with nearest
neighbor so the dots keep hard edges. A point size below 1 counts as 1.

If shrinking leaves nothing to dither the result is a W x H image filled with
the background color.
*/
func Pixelate(img image.Image, pointSize int, cfg DitherConfig) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if pointSize < 1 {
		pointSize = 1
	}
	pw, ph := w/pointSize, h/pointSize

	if pw == 0 || ph == 0 {
		out := NewBuffer(w, h)
		out.Fill(cfg.Palette.Bg)
		return out.Image()
	}

	small := img
	if pointSize > 1 {
		small = imaging.Resize(img, pw, ph, imaging.Linear)
	}
	dithered := Dither(FromImage(small), cfg)

	Logger().Debug("pixelated",
		zap.Int("point_size", pointSize),
		zap.Int("process_width", pw),
		zap.Int("process_height", ph))

	if pointSize == 1 {
		return dithered.Image()
	}
	return imaging.Resize(dithered.Image(), w, h, imaging.NearestNeighbor)
}
