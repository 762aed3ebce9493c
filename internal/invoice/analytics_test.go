package invoice

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VendorTotals", func() {
	var (
		records []*Record
		result  []VendorTotal
	)

	JustBeforeEach(func() {
		result = VendorTotals(records)
	})

	When("several vendors have several invoices", func() {
		BeforeEach(func() {
			records = []*Record{
				{Vendor: "Corner Cafe", Total: 12.5},
				{Vendor: "Acme Stores", Total: 118.0},
				{Vendor: "Corner Cafe", Total: 7.5},
			}
		})

		It("sums totals per vendor", func() {
			Expect(result).To(Equal([]VendorTotal{
				{Vendor: "Acme Stores", Total: 118.0},
				{Vendor: "Corner Cafe", Total: 20.0},
			}))
		})
	})

	When("a zero-total record is present", func() {
		BeforeEach(func() {
			// Zero totals cannot arrive through commit; inserted directly
			// they model a failed extraction and must not affect analytics.
			records = []*Record{
				{Vendor: "Acme Stores", Total: 118.0},
				{Vendor: "Acme Stores", Total: 0},
				{Vendor: "Ghost Vendor", Total: 0},
			}
		})

		It("excludes it entirely", func() {
			Expect(result).To(Equal([]VendorTotal{
				{Vendor: "Acme Stores", Total: 118.0},
			}))
		})
	})

	When("there are no records", func() {
		BeforeEach(func() {
			records = nil
		})

		It("returns an empty, non-nil table", func() {
			Expect(result).NotTo(BeNil())
			Expect(result).To(BeEmpty())
		})
	})

	When("vendors differ only by normalization leftovers", func() {
		BeforeEach(func() {
			records = []*Record{
				{Vendor: "Acme Stores", Total: 1},
				{Vendor: "Acme  Stores", Total: 2},
			}
		})

		It("groups by exact string equality", func() {
			Expect(result).To(HaveLen(2))
		})
	})
})

var _ = Describe("Timeline", func() {
	var (
		records []*Record
		result  []TimelinePoint
	)

	JustBeforeEach(func() {
		result = Timeline(records)
	})

	When("dates come in the recognized shapes", func() {
		BeforeEach(func() {
			records = []*Record{
				{Vendor: "A", Date: "2024-01-10", Total: 3},
				{Vendor: "B", Date: "04/01/2024", Total: 1},
				{Vendor: "C", Date: "05 Jan 2024", Total: 2},
				{Vendor: "D", Date: "Jan 20, 2024", Total: 4},
			}
		})

		It("parses them and sorts chronologically", func() {
			Expect(result).To(HaveLen(4))
			Expect(result[0].Total).To(Equal(1.0))
			Expect(result[1].Total).To(Equal(2.0))
			Expect(result[2].Total).To(Equal(3.0))
			Expect(result[3].Total).To(Equal(4.0))
		})

		It("keeps the parsed calendar dates", func() {
			Expect(result[0].Date).To(Equal(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)))
		})
	})

	When("a record's date does not parse", func() {
		BeforeEach(func() {
			records = []*Record{
				{Vendor: "A", Date: "Unknown", Total: 10},
				{Vendor: "B", Date: "garbled 99/99", Total: 20},
				{Vendor: "C", Date: "2024-02-01", Total: 30},
			}
		})

		It("excludes it from the series only", func() {
			Expect(result).To(HaveLen(1))
			Expect(result[0].Total).To(Equal(30.0))
		})

		It("still counts it toward vendor totals", func() {
			totals := VendorTotals(records)
			Expect(totals).To(HaveLen(3))
		})
	})

	When("a zero-total record has a valid date", func() {
		BeforeEach(func() {
			records = []*Record{
				{Vendor: "A", Date: "2024-02-01", Total: 0},
			}
		})

		It("is excluded like everywhere else in analytics", func() {
			Expect(result).To(BeEmpty())
		})
	})
})
