package ditherpunk

import (
	"bufio"
	"io"
)

// Braille is one 2x4 block of dots in x,y order:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
type Braille [2][4]bool

// Rune returns the Unicode braille symbol for the block. Dots are numbered
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// and dot n sets bit n-1 above U+2800.
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
func (b Braille) Rune() rune {
	order := [8]bool{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v rune
	for i, set := range order {
		if set {
			v |= 1 << uint(i)
		}
	}
	return '\u2800' + v
}

func (b Braille) String() string {
	return string(b.Rune())
}

// BrailleEncoder previews a two-color buffer as braille text. Every pixel that
// is not the background color becomes a raised dot.
type BrailleEncoder struct {
	w  io.Writer
	bg RGB
}

func NewBrailleEncoder(w io.Writer, bg RGB) *BrailleEncoder {
	return &BrailleEncoder{w: w, bg: bg}
}

// Encode writes buf as rows of braille symbols, each covering 2x4 pixels, with
// a line feed after every row. Blocks hanging over the right or bottom edge
// leave the missing dots lowered. It returns the number of text rows written.
func (enc *BrailleEncoder) Encode(buf *Buffer) (int, error) {
	if buf.Empty() {
		return 0, nil
	}
	out := bufio.NewWriter(enc.w)

	var rows int
	// Y first, then X, to walk the buffer in memory order.
	for py := 0; py < buf.Height; py += 4 {
		for px := 0; px < buf.Width; px += 2 {
			var b Braille
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= buf.Width || py+y >= buf.Height {
						continue
					}
					b[x][y] = buf.RGBAt(px+x, py+y) != enc.bg
				}
			}
			if _, err := out.WriteRune(b.Rune()); err != nil {
				return rows, err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return rows, err
		}
		rows++
	}
	return rows, out.Flush()
}
