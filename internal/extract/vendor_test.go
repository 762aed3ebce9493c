package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NormalizeVendor", func() {
	var (
		input  string
		result string
	)

	JustBeforeEach(func() {
		result = NormalizeVendor(input)
	})

	When("the input is a clean name", func() {
		BeforeEach(func() {
			input = "corner cafe"
		})

		It("title-cases each word", func() {
			Expect(result).To(Equal("Corner Cafe"))
		})
	})

	When("the input carries OCR noise", func() {
		BeforeEach(func() {
			input = "ACME* Store$ #123 Pvt. Ltd."
		})

		It("keeps only alphabetic tokens", func() {
			Expect(result).To(Equal("Acme Store Pvt Ltd"))
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			input = ""
		})

		It("returns the Unknown sentinel", func() {
			Expect(result).To(Equal("Unknown"))
		})
	})

	When("nothing alphabetic survives the strip", func() {
		BeforeEach(func() {
			input = "123 !!! ₹₹₹"
		})

		It("returns the Unknown sentinel instead of an empty string", func() {
			Expect(result).To(Equal("Unknown"))
		})
	})

	When("the input has runs of whitespace between words", func() {
		BeforeEach(func() {
			input = "  big   bazaar  "
		})

		It("collapses them to single spaces", func() {
			Expect(result).To(Equal("Big Bazaar"))
		})
	})

	DescribeTable("always produces letters and single spaces, never empty",
		func(input string) {
			out := NormalizeVendor(input)
			Expect(out).NotTo(BeEmpty())
			for _, r := range out {
				isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
				Expect(isLetter || r == ' ').To(BeTrue(), "unexpected rune %q in %q", r, out)
			}
			Expect(out).NotTo(ContainSubstring("  "))
			Expect(out).NotTo(HavePrefix(" "))
			Expect(out).NotTo(HaveSuffix(" "))
		},
		Entry("plain name", "walmart supercenter"),
		Entry("digits and symbols", "7-Eleven #204"),
		Entry("currency noise", "₹ Rs. 99 Store"),
		Entry("only punctuation", "!!!...///"),
		Entry("empty", ""),
	)
})
