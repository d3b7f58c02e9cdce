package invoice

import "math"

// All monetary amounts are integer cents. Percentages are applied with
// half-up rounding so that totals are reproducible.

// Statuses derived from the payment and refund history.
const (
	StatusUnpaid        = "unpaid"
	StatusPartiallyPaid = "partially_paid"
	StatusPaid          = "paid"
	StatusRefunded      = "refunded"
)

// Totals is the computed money breakdown of an invoice.
type Totals struct {
	Subtotal   int64
	Discount   int64
	TaxAmount  int64
	GrandTotal int64
}

// RoundHalfUp rounds a fractional cent amount to the nearest cent, with
// .5 rounding away from zero toward positive infinity.
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// LineTotal is the extended price of one invoice line.
func LineTotal(quantity int, unitPrice int64) int64 {
	return int64(quantity) * unitPrice
}

// Compute derives the invoice totals. Exactly one of discountFixed or
// discountPercent may be non-zero; the effective discount is clamped to
// [0, subtotal]. Tax applies to the discounted amount.
func Compute(subtotal, discountFixed int64, discountPercent, taxRate float64) Totals {
	discount := discountFixed
	if discountPercent > 0 {
		discount = RoundHalfUp(float64(subtotal) * discountPercent / 100)
	}
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	taxable := subtotal - discount
	taxAmount := int64(0)
	if taxRate > 0 {
		taxAmount = RoundHalfUp(float64(taxable) * taxRate / 100)
	}

	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		TaxAmount:  taxAmount,
		GrandTotal: taxable + taxAmount,
	}
}

// DeriveStatus computes the invoice status from its grand total and the
// sums of recorded payments and refunds.
func DeriveStatus(grandTotal, paid, refunded int64) string {
	net := paid - refunded
	switch {
	case refunded > 0 && paid > 0 && net <= 0:
		return StatusRefunded
	case net >= grandTotal && net > 0:
		return StatusPaid
	case grandTotal == 0:
		return StatusPaid
	case net > 0:
		return StatusPartiallyPaid
	default:
		return StatusUnpaid
	}
}
