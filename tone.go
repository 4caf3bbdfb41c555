package ditherpunk

// Tone holds the pre-quantization adjustments shared by the dither and ASCII
// paths.
type Tone struct {
	// Brightness shifts every channel by (Brightness-1)*128. 1 is neutral.
	Brightness float64
	// Contrast feeds the usual 259/255 contrast factor. 0 is neutral.
	Contrast float64
	// Detail is accepted and carried but has no effect on any transform.
	Detail float64
}

// NeutralTone leaves pixels unchanged.
var NeutralTone = Tone{Brightness: 1}

// Neutral reports whether applying t would be a no-op.
func (t Tone) Neutral() bool {
	return t.Brightness == 1 && t.Contrast == 0
}

func (t Tone) contrastFactor() float64 {
	return (259 * (t.Contrast + 255)) / (255 * (259 - t.Contrast))
}

// Apply adjusts buf in place: brightness first, then contrast around 128,
// then clamp. Alpha is untouched.
func (t Tone) Apply(buf *Buffer) {
	if buf.Empty() {
		return
	}
	shift := (t.Brightness - 1) * 128
	factor := t.contrastFactor()
	pix := buf.Pix[:buf.Width*buf.Height*4]
	for i := 0; i < len(pix); i += 4 {
		for c := i; c < i+3; c++ {
			v := float64(pix[c]) + shift
			pix[c] = clamp8(factor*(v-128) + 128)
		}
	}
}

// Adjust returns an adjusted copy of buf.
func (t Tone) Adjust(buf *Buffer) *Buffer {
	out := buf.Clone()
	t.Apply(out)
	return out
}
