package ditherpunk_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/ditherpunk"
)

var _ = Describe("Kernels", func() {
	It("has the eight published kernels", func() {
		Expect(Algorithms()).To(Equal([]Algorithm{
			FloydSteinberg, FalseFloydSteinberg, Atkinson, Stucki,
			Burkes, Sierra, SierraTwoRow, SierraLite,
		}))
	})

	DescribeTable("published recipes",
		func(name Algorithm, divisor int, taps []Tap) {
			k, ok := KernelFor(name)
			Expect(ok).To(BeTrue())
			Expect(k.Name).To(Equal(name))
			Expect(k.Divisor).To(Equal(divisor))
			Expect(k.Taps).To(Equal(taps))
		},
		Entry("Floyd-Steinberg", FloydSteinberg, 16, []Tap{
			{DX: 1, DY: 0, Weight: 7},
			{DX: -1, DY: 1, Weight: 3}, {DX: 0, DY: 1, Weight: 5}, {DX: 1, DY: 1, Weight: 1},
		}),
		Entry("False Floyd-Steinberg", FalseFloydSteinberg, 8, []Tap{
			{DX: 1, DY: 0, Weight: 3},
			{DX: 0, DY: 1, Weight: 3}, {DX: 1, DY: 1, Weight: 2},
		}),
		Entry("Atkinson", Atkinson, 8, []Tap{
			{DX: 1, DY: 0, Weight: 1}, {DX: 2, DY: 0, Weight: 1},
			{DX: -1, DY: 1, Weight: 1}, {DX: 0, DY: 1, Weight: 1}, {DX: 1, DY: 1, Weight: 1},
			{DX: 0, DY: 2, Weight: 1},
		}),
		Entry("Stucki", Stucki, 42, []Tap{
			{DX: 1, DY: 0, Weight: 8}, {DX: 2, DY: 0, Weight: 4},
			{DX: -2, DY: 1, Weight: 2}, {DX: -1, DY: 1, Weight: 4}, {DX: 0, DY: 1, Weight: 8}, {DX: 1, DY: 1, Weight: 4}, {DX: 2, DY: 1, Weight: 2},
			{DX: -2, DY: 2, Weight: 1}, {DX: -1, DY: 2, Weight: 2}, {DX: 0, DY: 2, Weight: 4}, {DX: 1, DY: 2, Weight: 2}, {DX: 2, DY: 2, Weight: 1},
		}),
		Entry("Burkes", Burkes, 32, []Tap{
			{DX: 1, DY: 0, Weight: 8}, {DX: 2, DY: 0, Weight: 4},
			{DX: -2, DY: 1, Weight: 2}, {DX: -1, DY: 1, Weight: 4}, {DX: 0, DY: 1, Weight: 8}, {DX: 1, DY: 1, Weight: 4}, {DX: 2, DY: 1, Weight: 2},
		}),
		Entry("Sierra", Sierra, 32, []Tap{
			{DX: 1, DY: 0, Weight: 5}, {DX: 2, DY: 0, Weight: 3},
			{DX: -2, DY: 1, Weight: 2}, {DX: -1, DY: 1, Weight: 4}, {DX: 0, DY: 1, Weight: 5}, {DX: 1, DY: 1, Weight: 4}, {DX: 2, DY: 1, Weight: 2},
			{DX: -1, DY: 2, Weight: 2}, {DX: 0, DY: 2, Weight: 3}, {DX: 1, DY: 2, Weight: 2},
		}),
		Entry("Sierra Two-Row", SierraTwoRow, 16, []Tap{
			{DX: 1, DY: 0, Weight: 4}, {DX: 2, DY: 0, Weight: 3},
			{DX: -2, DY: 1, Weight: 1}, {DX: -1, DY: 1, Weight: 2}, {DX: 0, DY: 1, Weight: 3}, {DX: 1, DY: 1, Weight: 2}, {DX: 2, DY: 1, Weight: 1},
		}),
		Entry("Sierra Lite", SierraLite, 4, []Tap{
			{DX: 1, DY: 0, Weight: 2},
			{DX: -1, DY: 1, Weight: 1}, {DX: 0, DY: 1, Weight: 1},
		}),
	)

	It("distributes the full error for every kernel but Atkinson", func() {
		for _, name := range Algorithms() {
			k, _ := KernelFor(name)
			var sum int
			for _, tap := range k.Taps {
				sum += tap.Weight
			}
			if name == Atkinson {
				// Atkinson spreads only 6/8 of the error.
				Expect(sum).To(Equal(6), string(name))
				continue
			}
			Expect(sum).To(Equal(k.Divisor), string(name))
		}
	})

	It("only pushes error forward in scan order", func() {
		for _, name := range Algorithms() {
			k, _ := KernelFor(name)
			for _, tap := range k.Taps {
				forward := tap.DY > 0 || (tap.DY == 0 && tap.DX > 0)
				Expect(forward).To(BeTrue(), string(name))
			}
		}
	})

	It("accepts slugs", func() {
		k, ok := KernelFor("sierra-lite")
		Expect(ok).To(BeTrue())
		Expect(k.Name).To(Equal(SierraLite))

		k, ok = KernelFor("SIERRA TWO-ROW")
		Expect(ok).To(BeTrue())
		Expect(k.Name).To(Equal(SierraTwoRow))
	})

	It("falls back to Floyd-Steinberg", func() {
		k, ok := KernelFor("Jarvis-Judice-Ninke")
		Expect(ok).To(BeFalse())
		Expect(k.Name).To(Equal(FloydSteinberg))
	})
})
