package ditherpunk_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kevin-cantwell/ditherpunk"
)

var _ = Describe("Xterm", func() {
	var (
		out  bytes.Buffer
		term *Xterm
	)

	BeforeEach(func() {
		out.Reset()
		term = &Xterm{Writer: &out}
	})

	It("moves the cursor up and to the start of the line", func() {
		term.ResetCursor(3)
		Expect(out.String()).To(Equal("\033[999D\033[3A"))
	})

	It("does not move up for zero rows", func() {
		term.ResetCursor(0)
		Expect(out.String()).To(Equal("\033[999D"))
	})

	It("hides and shows the cursor", func() {
		term.ShowCursor(false)
		term.ShowCursor(true)
		Expect(out.String()).To(Equal("\033[?25l\033[?12l\033[?25h"))
	})
})
