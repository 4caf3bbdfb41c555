package ditherpunk_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/ditherpunk"
)

var _ = Describe("Tone", func() {
	pixel := func(v, a uint8) *Buffer {
		return &Buffer{Width: 1, Height: 1, Pix: []uint8{v, v, v, a}}
	}

	It("leaves pixels alone when neutral", func() {
		buf := noise(16, 16)
		Expect(NeutralTone.Adjust(buf).Pix).To(Equal(buf.Pix))
		Expect(NeutralTone.Neutral()).To(BeTrue())
	})

	It("ignores detail", func() {
		buf := noise(8, 8)
		Expect(Tone{Brightness: 1, Detail: 0.9}.Adjust(buf).Pix).To(Equal(buf.Pix))
	})

	It("shifts by (brightness-1)*128 and clamps", func() {
		Expect(Tone{Brightness: 2}.Adjust(pixel(100, 255)).Pix).To(Equal([]uint8{228, 228, 228, 255}))
		Expect(Tone{Brightness: 2}.Adjust(pixel(200, 255)).Pix).To(Equal([]uint8{255, 255, 255, 255}))
		Expect(Tone{Brightness: 0}.Adjust(pixel(100, 255)).Pix).To(Equal([]uint8{0, 0, 0, 255}))
	})

	It("stretches contrast around 128", func() {
		t := Tone{Brightness: 1, Contrast: 128}
		Expect(t.Adjust(pixel(128, 255)).Pix[0]).To(Equal(uint8(128)))
		Expect(t.Adjust(pixel(100, 255)).Pix[0]).To(Equal(uint8(45)))
	})

	It("applies brightness before contrast", func() {
		t := Tone{Brightness: 1.5, Contrast: 128}
		Expect(t.Adjust(pixel(100, 255)).Pix[0]).To(Equal(uint8(235)))
	})

	It("carries alpha through", func() {
		Expect(Tone{Brightness: 1.7, Contrast: 40}.Adjust(pixel(90, 77)).Pix[3]).To(Equal(uint8(77)))
	})

	It("saturates at the contrast pole", func() {
		pole := Tone{Brightness: 1, Contrast: 259}
		Expect(pole.Adjust(pixel(200, 255)).Pix).To(Equal([]uint8{255, 255, 255, 255}))
		Expect(pole.Adjust(pixel(10, 255)).Pix).To(Equal([]uint8{0, 0, 0, 255}))
		// On the pivot the factor times zero is NaN, stored as 0.
		Expect(pole.Adjust(pixel(128, 255)).Pix).To(Equal([]uint8{0, 0, 0, 255}))
	})

	It("flattens everything to 128 at contrast -255", func() {
		flat := Tone{Brightness: 1, Contrast: -255}
		Expect(flat.Adjust(pixel(0, 255)).Pix).To(Equal([]uint8{128, 128, 128, 255}))
		Expect(flat.Adjust(pixel(255, 255)).Pix).To(Equal([]uint8{128, 128, 128, 255}))
	})

	It("clamps extreme brightness", func() {
		Expect(Tone{Brightness: -4}.Adjust(pixel(255, 255)).Pix).To(Equal([]uint8{0, 0, 0, 255}))
		Expect(Tone{Brightness: 10}.Adjust(pixel(0, 255)).Pix).To(Equal([]uint8{255, 255, 255, 255}))
	})

	It("does not modify the input of Adjust", func() {
		buf := pixel(100, 255)
		Tone{Brightness: 2}.Adjust(buf)
		Expect(buf.Pix).To(Equal([]uint8{100, 100, 100, 255}))
	})

	It("tolerates empty buffers", func() {
		Expect(func() { Tone{Brightness: 2}.Apply(NewBuffer(0, 3)) }).NotTo(Panic())
	})
})
