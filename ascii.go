package ditherpunk

import (
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Character sets. The darkest sample maps to the first glyph and the brightest
// to the last.
const (
	DefaultCharSet = " .:-=+*#%@"
	DenseCharSet   = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "
	BinaryCharSet  = "01"
)

// CellAspect is the width of a monospace cell relative to its height.
const CellAspect = 0.6

var charSets = map[string]string{
	"default": DefaultCharSet,
	"dense":   DenseCharSet,
	"binary":  BinaryCharSet,
}

// CharSetByName resolves "default", "dense" or "binary".
func CharSetByName(name string) (string, bool) {
	cs, ok := charSets[strings.ToLower(name)]
	return cs, ok
}

// AsciiConfig configures SampleGrid and RenderASCII.
type AsciiConfig struct {
	// FontSize is the cell height in pixels; cells are FontSize*CellAspect wide.
	FontSize float64
	CharSet  string
	// Inverted reverses CharSet.
	Inverted bool
	Ink      RGB
	// InkGradient, when non-empty, colors each grid row with
	// Interpolate(InkGradient, row/rows) instead of Ink.
	InkGradient []RGB
	Bg          RGB
}

// DefaultAsciiConfig mirrors the defaults of the dither path.
var DefaultAsciiConfig = AsciiConfig{
	FontSize: 10,
	CharSet:  DefaultCharSet,
	Ink:      Black,
	Bg:       White,
}

func (cfg AsciiConfig) glyphs() []rune {
	runes := []rune(norm.NFC.String(cfg.CharSet))
	if cfg.Inverted {
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
	}
	return runes
}

// InkAt returns the ink for grid row row of rows.
func (cfg AsciiConfig) InkAt(row, rows int) RGB {
	if len(cfg.InkGradient) == 0 || rows <= 0 {
		return cfg.Ink
	}
	return Interpolate(cfg.InkGradient, float64(row)/float64(rows))
}

// Grid is the character grid an image maps to.
type Grid struct {
	CellWidth  float64
	CellHeight float64
	// Cells is indexed [row][col].
	Cells [][]rune
	// Ink holds the ink color of each row.
	Ink []RGB
}

func (g Grid) Rows() int { return len(g.Cells) }

func (g Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// String renders the grid as plain text, one line per row.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

/*
SampleGrid maps buf onto a grid of FontSize*0.6 by FontSize cells. Each cell
takes the single pixel at its top-left corner, averages its three channels and
picks the glyph at floor(brightness/255*(len-1)).

buf is expected to be tone-adjusted already. A zero-area buffer, a
non-positive font size or an empty charset produce an empty grid.
*/
func SampleGrid(buf *Buffer, cfg AsciiConfig) Grid {
	g := Grid{
		CellWidth:  cfg.FontSize * CellAspect,
		CellHeight: cfg.FontSize,
	}
	glyphs := cfg.glyphs()
	if buf.Empty() || cfg.FontSize <= 0 || len(glyphs) == 0 {
		return g
	}

	cols := int(math.Floor(float64(buf.Width) / g.CellWidth))
	rows := int(math.Floor(float64(buf.Height) / g.CellHeight))
	if cols <= 0 || rows <= 0 {
		return g
	}

	last := float64(len(glyphs) - 1)
	g.Cells = make([][]rune, rows)
	g.Ink = make([]RGB, rows)
	for row := 0; row < rows; row++ {
		g.Ink[row] = cfg.InkAt(row, rows)
		py := int(math.Floor(float64(row) * g.CellHeight))
		line := make([]rune, cols)
		for col := 0; col < cols; col++ {
			px := int(math.Floor(float64(col) * g.CellWidth))
			c := buf.RGBAt(px, py)
			brightness := (float64(c.R) + float64(c.G) + float64(c.B)) / 3
			line[col] = glyphs[int(math.Floor(brightness/255*last))]
		}
		g.Cells[row] = line
	}
	return g
}

// RenderASCII draws the grid for buf into a new buffer of the same size,
// filled with cfg.Bg, with each glyph's top edge at its cell origin.
func RenderASCII(buf *Buffer, cfg AsciiConfig) *Buffer {
	if buf.Empty() {
		if buf == nil {
			return NewBuffer(0, 0)
		}
		return NewBuffer(buf.Width, buf.Height)
	}

	grid := SampleGrid(buf, cfg)
	out := NewBuffer(buf.Width, buf.Height)
	if err := drawGrid(out, grid, cfg.FontSize, cfg.Bg); err != nil {
		// The embedded face always parses; fall back to a plain background.
		Logger().Warn("glyph rendering failed", zap.Error(err))
		out.Fill(cfg.Bg)
	}

	Logger().Debug("rendered ascii",
		zap.Int("cols", grid.Cols()),
		zap.Int("rows", grid.Rows()),
		zap.Float64("font_size", cfg.FontSize))
	return out
}
