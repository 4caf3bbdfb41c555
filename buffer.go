package ditherpunk

import (
	"image"

	"github.com/disintegration/imaging"
)

// Buffer is a tightly packed, non-premultiplied RGBA pixel buffer. Pix holds
// Width*Height pixels in row-major order, 4 bytes each.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a fully transparent black buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies img into a new Buffer. The image's bounds need not start at
// (0, 0); the buffer always does.
func FromImage(img image.Image) *Buffer {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Buffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}

// Image wraps the buffer's pixels in an *image.NRGBA without copying.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Empty reports whether the buffer has no pixels to process.
func (b *Buffer) Empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0 || len(b.Pix) < b.Width*b.Height*4
}

func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// RGBAt returns the color of the pixel at (x, y), ignoring alpha.
func (b *Buffer) RGBAt(x, y int) RGB {
	i := (y*b.Width + x) * 4
	return RGB{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// SetRGB overwrites the color channels at (x, y) and leaves alpha alone.
func (b *Buffer) SetRGB(x, y int, c RGB) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

// Fill sets every pixel to c with full opacity.
func (b *Buffer) Fill(c RGB) {
	for i := 0; i+3 < len(b.Pix); i += 4 {
		b.Pix[i] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = 0xff
	}
}
