package report

import (
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("truncate", func() {
	It("should return short strings unchanged", func() {
		Expect(truncate("screen flickers", 100)).To(Equal("screen flickers"))
	})

	It("should cut long ASCII strings to the limit", func() {
		Expect(truncate("abcdefgh", 5)).To(Equal("abcde"))
	})

	It("should not split a multi-byte rune", func() {
		s := "écran défectueux àààààà"
		out := truncate(s, 10)

		Expect(utf8.ValidString(out)).To(BeTrue())
		Expect([]rune(out)).To(HaveLen(10))
	})

	It("should count runes, not bytes, against the limit", func() {
		// four runes, twelve bytes; a byte-based cut would shorten it
		s := "日本語デ"
		Expect(truncate(s, 4)).To(Equal(s))
	})
})
