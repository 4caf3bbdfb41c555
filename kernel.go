package ditherpunk

import "strings"

// Algorithm names an error-diffusion kernel.
type Algorithm string

const (
	FloydSteinberg      Algorithm = "Floyd-Steinberg"
	FalseFloydSteinberg Algorithm = "False Floyd-Steinberg"
	Atkinson            Algorithm = "Atkinson"
	Stucki              Algorithm = "Stucki"
	Burkes              Algorithm = "Burkes"
	Sierra              Algorithm = "Sierra"
	SierraTwoRow        Algorithm = "Sierra Two-Row"
	SierraLite          Algorithm = "Sierra Lite"
)

// Tap pushes Weight/Divisor of the quantization error to the pixel at (DX, DY)
// relative to the one just quantized.
type Tap struct {
	DX, DY int
	Weight int
}

// Kernel is an error-diffusion recipe. Every tap points forward in scan order
// (DY > 0, or DY == 0 and DX > 0).
type Kernel struct {
	Name    Algorithm
	Divisor int
	Taps    []Tap
}

var kernels = []Kernel{
	{FloydSteinberg, 16, []Tap{
		{1, 0, 7},
		{-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
	}},
	{FalseFloydSteinberg, 8, []Tap{
		{1, 0, 3},
		{0, 1, 3}, {1, 1, 2},
	}},
	{Atkinson, 8, []Tap{
		{1, 0, 1}, {2, 0, 1},
		{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
		{0, 2, 1},
	}},
	{Stucki, 42, []Tap{
		{1, 0, 8}, {2, 0, 4},
		{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
		{-2, 2, 1}, {-1, 2, 2}, {0, 2, 4}, {1, 2, 2}, {2, 2, 1},
	}},
	{Burkes, 32, []Tap{
		{1, 0, 8}, {2, 0, 4},
		{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
	}},
	{Sierra, 32, []Tap{
		{1, 0, 5}, {2, 0, 3},
		{-2, 1, 2}, {-1, 1, 4}, {0, 1, 5}, {1, 1, 4}, {2, 1, 2},
		{-1, 2, 2}, {0, 2, 3}, {1, 2, 2},
	}},
	{SierraTwoRow, 16, []Tap{
		{1, 0, 4}, {2, 0, 3},
		{-2, 1, 1}, {-1, 1, 2}, {0, 1, 3}, {1, 1, 2}, {2, 1, 1},
	}},
	{SierraLite, 4, []Tap{
		{1, 0, 2},
		{-1, 1, 1}, {0, 1, 1},
	}},
}

// Algorithms lists the supported kernels in their canonical order.
func Algorithms() []Algorithm {
	names := make([]Algorithm, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name
	}
	return names
}

// KernelFor looks up a kernel by name. Besides the canonical names it accepts
// case-insensitive slugs such as "sierra-lite". The boolean is false, and the
// Floyd-Steinberg kernel is returned, when nothing matches.
func KernelFor(name Algorithm) (Kernel, bool) {
	for _, k := range kernels {
		if k.Name == name {
			return k, true
		}
	}
	slug := slugify(string(name))
	for _, k := range kernels {
		if slugify(string(k.Name)) == slug {
			return k, true
		}
	}
	return kernels[0], false
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}
