package money

import "github.com/shopspring/decimal"

// VATRate is the Philippine value-added tax applied to receipts.
const VATRate = 0.12

// Round2 rounds v to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Mul returns round2(a*b).
func Mul(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Sum adds amounts exactly and rounds the result to cents.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

// Summary holds the monetary fields of one receipt.
type Summary struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// Totals derives discount, tax and total from a subtotal. Every intermediate
// amount is rounded to cents before it feeds the next step.
func Totals(subtotal, discountRate, taxRate float64) Summary {
	subtotal = Round2(subtotal)
	discount := Mul(subtotal, discountRate)
	taxable := Sum(subtotal, -discount)
	tax := Mul(taxable, taxRate)
	return Summary{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    Sum(taxable, tax),
	}
}
