package ditherpunk

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for anything that is not a 6 digit hex color.
var ErrInvalidHex = errors.New("ditherpunk: invalid hex color")

// RGB is an opaque sRGB color with 8 bit channels. Alpha never takes part in
// palette math; transforms carry it through untouched.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseHex parses "#rrggbb" or "rrggbb", case-insensitive.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// HexToRGB is the lenient form of ParseHex: malformed input yields black.
// Callers that need to reject bad colors should use ParseHex.
func HexToRGB(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Distance is the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

/*
Interpolate returns the color at position t along a gradient of evenly spaced
stops. t is clamped to [0, 1]. The stops divide [0, 1] into len(stops)-1 equal
segments and each channel is interpolated linearly inside its segment, then
rounded half up.

	Interpolate(nil, t)              == Black
	Interpolate([]RGB{c}, t)         == c
	Interpolate(stops, 0)            == stops[0]
	Interpolate(stops, 1)            == stops[len(stops)-1]
*/
func Interpolate(stops []RGB, t float64) RGB {
	switch len(stops) {
	case 0:
		return Black
	case 1:
		return stops[0]
	}

	t = math.Max(0, math.Min(1, t))

	segment := 1 / float64(len(stops)-1)
	i := int(math.Floor(t / segment))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}

	from, to := stops[i], stops[i+1]
	local := (t - float64(i)*segment) / segment
	return RGB{
		R: lerp(from.R, to.R, local),
		G: lerp(from.G, to.G, local),
		B: lerp(from.B, to.B, local),
	}
}

// InterpolateHex is Interpolate over hex string stops. Malformed stops count as black.
func InterpolateHex(stops []string, t float64) RGB {
	colors := make([]RGB, len(stops))
	for i, s := range stops {
		colors[i] = HexToRGB(s)
	}
	return Interpolate(colors, t)
}

// ParseGradient parses a comma separated list of hex stops, e.g. "#ff0000,#0000ff".
func ParseGradient(s string) ([]RGB, error) {
	var stops []RGB
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := ParseHex(part)
		if err != nil {
			return nil, err
		}
		stops = append(stops, c)
	}
	return stops, nil
}

func lerp(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Floor(v + 0.5))
}

// clamp8 stores v the way an 8 bit clamped canvas buffer does: clamped to
// [0, 255], rounded to nearest with ties to even, NaN as 0.
func clamp8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}
