package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Date", func() {
	var (
		text   string
		result string
	)

	JustBeforeEach(func() {
		result = Date(text)
	})

	When("the text contains a slash-separated date", func() {
		BeforeEach(func() {
			text = "Invoice dated 04/01/2024 thanks"
		})

		It("returns the substring verbatim", func() {
			Expect(result).To(Equal("04/01/2024"))
		})
	})

	When("the text contains a dash-separated day-first date", func() {
		BeforeEach(func() {
			text = "Due 15-03-2023"
		})

		It("matches the first pattern", func() {
			Expect(result).To(Equal("15-03-2023"))
		})
	})

	When("the text contains an ISO date only", func() {
		BeforeEach(func() {
			text = "issued 2024-01-04"
		})

		It("matches the ISO pattern", func() {
			Expect(result).To(Equal("2024-01-04"))
		})
	})

	When("the text contains a day month-name year date", func() {
		BeforeEach(func() {
			text = "Paid on 04 Jan 2024."
		})

		It("matches the month-name pattern", func() {
			Expect(result).To(Equal("04 Jan 2024"))
		})
	})

	When("the text contains a month-name day, year date", func() {
		BeforeEach(func() {
			text = "Statement for January 04, 2024"
		})

		It("matches the trailing-year pattern", func() {
			Expect(result).To(Equal("January 04, 2024"))
		})
	})

	When("the text contains both ISO and slash-separated dates", func() {
		BeforeEach(func() {
			// The ISO form appears first in the text, but the slash form
			// belongs to an earlier pattern, and pattern priority strictly
			// dominates position.
			text = "created 2024-01-04 due 15/02/2024"
		})

		It("prefers the slash-separated form", func() {
			Expect(result).To(Equal("15/02/2024"))
		})
	})

	When("no pattern matches", func() {
		BeforeEach(func() {
			text = "no dates here, just totals: 42"
		})

		It("returns the Unknown sentinel", func() {
			Expect(result).To(Equal("Unknown"))
		})
	})

	When("the date is not calendar-valid", func() {
		BeforeEach(func() {
			text = "dated 31 Feb 2024"
		})

		It("still matches on shape alone", func() {
			Expect(result).To(Equal("31 Feb 2024"))
		})
	})
})
