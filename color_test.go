package ditherpunk_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/ditherpunk"
)

var _ = Describe("Color math", func() {
	Describe("HexToRGB", func() {
		It("parses with or without a hash, in any case", func() {
			Expect(HexToRGB("#1a237e")).To(Equal(RGB{R: 0x1a, G: 0x23, B: 0x7e}))
			Expect(HexToRGB("FFC107")).To(Equal(RGB{R: 0xff, G: 0xc1, B: 0x07}))
			Expect(HexToRGB("#bF360c")).To(Equal(RGB{R: 0xbf, G: 0x36, B: 0x0c}))
		})

		It("degrades malformed input to black", func() {
			for _, s := range []string{"", "#", "#fff", "#12345", "#1234567", "zzzzzz", "#12 456", "0x1234"} {
				Expect(HexToRGB(s)).To(Equal(Black), s)
			}
		})

		It("round trips through Hex", func() {
			for r := 0; r < 256; r += 15 {
				for g := 0; g < 256; g += 17 {
					for b := 0; b < 256; b += 51 {
						c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
						Expect(HexToRGB(c.Hex())).To(Equal(c))
					}
				}
			}
			Expect(RGB{R: 0xab, G: 0x01, B: 0xff}.Hex()).To(Equal("#ab01ff"))
		})
	})

	Describe("ParseHex", func() {
		It("rejects malformed colors", func() {
			_, err := ParseHex("#12345g")
			Expect(errors.Is(err, ErrInvalidHex)).To(BeTrue())
		})
	})

	Describe("Distance", func() {
		It("is Euclidean", func() {
			Expect(Distance(Black, RGB{R: 3, G: 4, B: 0})).To(Equal(5.0))
			Expect(Distance(Black, White)).To(BeNumerically("~", 255*math.Sqrt(3), 1e-9))
			Expect(Distance(White, White)).To(BeZero())
		})
	})

	Describe("Interpolate", func() {
		red, green, blue := RGB{R: 255, G: 0, B: 0}, RGB{R: 0, G: 255, B: 0}, RGB{R: 0, G: 0, B: 255}

		It("returns black for no stops", func() {
			Expect(Interpolate(nil, 0.3)).To(Equal(Black))
		})

		It("returns a single stop unchanged", func() {
			for _, t := range []float64{-1, 0, 0.5, 1, 2} {
				Expect(Interpolate([]RGB{blue}, t)).To(Equal(blue))
			}
		})

		It("hits the end stops exactly and clamps t", func() {
			stops := []RGB{red, green, blue}
			Expect(Interpolate(stops, 0)).To(Equal(red))
			Expect(Interpolate(stops, 1)).To(Equal(blue))
			Expect(Interpolate(stops, -3)).To(Equal(red))
			Expect(Interpolate(stops, 7)).To(Equal(blue))
		})

		It("splits stops into equal segments and rounds half up", func() {
			stops := []RGB{red, green, blue}
			Expect(Interpolate(stops, 0.5)).To(Equal(green))
			Expect(Interpolate(stops, 0.25)).To(Equal(RGB{R: 128, G: 128, B: 0}))
			Expect(Interpolate([]RGB{Black, White}, 0.5)).To(Equal(gray(128)))
		})

		It("is monotonic per channel between adjacent stops", func() {
			prev := Interpolate([]RGB{Black, White}, 0)
			for i := 1; i <= 100; i++ {
				c := Interpolate([]RGB{Black, White}, float64(i)/100)
				Expect(c.R).To(BeNumerically(">=", prev.R))
				Expect(c.R - prev.R).To(BeNumerically("<=", 3))
				prev = c
			}
		})

		It("accepts hex stops", func() {
			Expect(InterpolateHex([]string{"#000000", "#ffffff"}, 1)).To(Equal(White))
			Expect(InterpolateHex(nil, 1)).To(Equal(Black))
		})
	})

	Describe("ParseGradient", func() {
		It("parses comma separated stops", func() {
			stops, err := ParseGradient("#ff0000, #0000ff,")
			Expect(err).NotTo(HaveOccurred())
			Expect(stops).To(Equal([]RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}}))
		})

		It("rejects bad stops", func() {
			_, err := ParseGradient("#ff0000,nope")
			Expect(errors.Is(err, ErrInvalidHex)).To(BeTrue())
		})
	})
})
