package salesdoc

import (
	"slices"

	"github.com/shopspring/decimal"
)

// VATAmount is the sum of the bases and VAT
// of all lines with the same VAT percent.
type VATAmount struct {
	Percent decimal.Decimal `json:"percent"`
	Base    decimal.Decimal `json:"base"`
	VAT     decimal.Decimal `json:"vat"`
}

// Totals of a document summed up from the rounded line amounts.
type Totals struct {
	Gross        decimal.Decimal `json:"gross"`
	Discount     decimal.Decimal `json:"discount"`
	Base         decimal.Decimal `json:"base"`
	VAT          decimal.Decimal `json:"vat"`
	Total        decimal.Decimal `json:"total"`
	VATBreakdown []VATAmount     `json:"vatBreakdown,omitempty"`
}

// CalcTotals sums up the amounts of lines.
// VATBreakdown is sorted by ascending VAT percent.
func CalcTotals(lines []Line) Totals {
	var totals Totals
	for _, line := range lines {
		amounts := line.Amounts()
		totals.Gross = totals.Gross.Add(amounts.Gross)
		totals.Discount = totals.Discount.Add(amounts.Discount)
		totals.Base = totals.Base.Add(amounts.Base)
		totals.VAT = totals.VAT.Add(amounts.VAT)
		totals.Total = totals.Total.Add(amounts.Total)

		i := slices.IndexFunc(totals.VATBreakdown, func(v VATAmount) bool {
			return v.Percent.Equal(line.VATPercent)
		})
		if i < 0 {
			totals.VATBreakdown = append(totals.VATBreakdown, VATAmount{Percent: line.VATPercent})
			i = len(totals.VATBreakdown) - 1
		}
		totals.VATBreakdown[i].Base = totals.VATBreakdown[i].Base.Add(amounts.Base)
		totals.VATBreakdown[i].VAT = totals.VATBreakdown[i].VAT.Add(amounts.VAT)
	}
	slices.SortFunc(totals.VATBreakdown, func(a, b VATAmount) int {
		return a.Percent.Cmp(b.Percent)
	})
	return totals
}
