package salesdoc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is the number of decimal places
// amounts are rounded to.
const Cents = 2

var hundred = decimal.NewFromInt(100)

// Line is a position of a sales document.
type Line struct {
	Articulo        string          `json:"articulo"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	VATPercent      decimal.Decimal `json:"vatPercent"`
}

// NewLine returns a Line without discount.
func NewLine(articulo string, quantity, unitPrice, vatPercent decimal.Decimal) Line {
	return Line{
		Articulo:   articulo,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		VATPercent: vatPercent,
	}
}

// WithDiscount returns a copy of the line with discountPercent.
func (l Line) WithDiscount(discountPercent decimal.Decimal) Line {
	l.DiscountPercent = discountPercent
	return l
}

// Validate returns a wrapped sentinel error
// for the first invalid value of the line.
func (l Line) Validate() error {
	switch {
	case l.Articulo == "":
		return ErrMissingArticulo
	case l.Quantity.IsNegative():
		return fmt.Errorf("%w: %s of %q", ErrNegativeQuantity, l.Quantity, l.Articulo)
	case l.UnitPrice.IsNegative():
		return fmt.Errorf("%w: %s of %q", ErrNegativePrice, l.UnitPrice, l.Articulo)
	case l.DiscountPercent.IsNegative() || l.DiscountPercent.GreaterThan(hundred):
		return fmt.Errorf("%w: %s of %q", ErrInvalidDiscount, l.DiscountPercent, l.Articulo)
	case l.VATPercent.IsNegative():
		return fmt.Errorf("%w: %s of %q", ErrNegativeVAT, l.VATPercent, l.Articulo)
	}
	return nil
}

// LineAmounts are the calculated amounts of a Line
// rounded to cents.
type LineAmounts struct {
	Gross    decimal.Decimal `json:"gross"`
	Discount decimal.Decimal `json:"discount"`
	Base     decimal.Decimal `json:"base"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// Amounts calculates
//
//	Gross    = Quantity × UnitPrice
//	Discount = Gross × DiscountPercent / 100
//	Base     = Gross − Discount
//	VAT      = Base × VATPercent / 100
//	Total    = Base + VAT
//
// Gross, Discount and VAT are rounded half away from zero to cents,
// Base and Total are calculated from the rounded amounts.
func (l Line) Amounts() LineAmounts {
	gross := l.Quantity.Mul(l.UnitPrice).Round(Cents)
	discount := gross.Mul(l.DiscountPercent).Div(hundred).Round(Cents)
	base := gross.Sub(discount)
	vat := base.Mul(l.VATPercent).Div(hundred).Round(Cents)
	return LineAmounts{
		Gross:    gross,
		Discount: discount,
		Base:     base,
		VAT:      vat,
		Total:    base.Add(vat),
	}
}

// Total returns the rounded total of the line including VAT.
func (l Line) Total() decimal.Decimal {
	return l.Amounts().Total
}
