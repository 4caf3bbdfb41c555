package ditherpunk_test

import (
	"sort"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/ditherpunk"
)

var _ = Describe("Presets", func() {
	It("lists every preset in order", func() {
		names := PresetNames()
		Expect(names).To(HaveLen(7))
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
		Expect(names).To(ContainElement("classic"))
	})

	It("resolves names case-insensitively", func() {
		p, ok := PresetByName("Navy-Amber")
		Expect(ok).To(BeTrue())
		Expect(p.Palette()).To(Equal(Palette{Ink: RGB{R: 0x1a, G: 0x23, B: 0x7e}, Bg: RGB{R: 0xff, G: 0xc1, B: 0x07}}))

		_, ok = PresetByName("sepia")
		Expect(ok).To(BeFalse())
	})
})
