// file: internals/features/billing/invoices/service/totals_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

var oneHundred = decimal.NewFromInt(100)

// Totals is the TotalsCalculator output. All components are >= 0 and
// Total == (Subtotal - Discount) + Tax.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalcTotals computes invoice totals from line items, a fixed discount,
// a percentage discount (0-100) and a tax rate (0-100) applied to the
// post-discount subtotal. When both discounts are supplied the percentage
// wins; this tie-break is deliberate and matched by the discount endpoint.
// Pure: same inputs always yield the same Totals.
func CalcTotals(items []model.InvoiceItem, discount, discountPct, taxRate decimal.Decimal) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, fiber.NewError(fiber.StatusBadRequest, "discount must not be negative")
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(oneHundred) {
		return Totals{}, fiber.NewError(fiber.StatusBadRequest, "discount_percentage must be between 0 and 100")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(oneHundred) {
		return Totals{}, fiber.NewError(fiber.StatusBadRequest, "tax_rate must be between 0 and 100")
	}

	subtotal := decimal.Zero
	for _, it := range items {
		line := it.LineTotal()
		if line.IsNegative() {
			return Totals{}, fiber.NewError(fiber.StatusBadRequest, "item total must not be negative")
		}
		subtotal = subtotal.Add(line)
	}

	discountAmount := discount
	if discountPct.IsPositive() {
		discountAmount = subtotal.Mul(discountPct).Div(oneHundred)
	}
	discountAmount = discountAmount.Round(2)
	if discountAmount.GreaterThan(subtotal) {
		return Totals{}, fiber.NewError(fiber.StatusBadRequest, "discount exceeds subtotal")
	}

	afterDiscount := subtotal.Sub(discountAmount)
	tax := afterDiscount.Mul(taxRate).Div(oneHundred).Round(2)

	return Totals{
		Subtotal: subtotal.Round(2),
		Discount: discountAmount,
		Tax:      tax,
		Total:    afterDiscount.Add(tax).Round(2),
	}, nil
}

// NormalizeItems fills each zero item total with quantity * unit_price so
// the persisted jsonb always carries explicit line totals.
func NormalizeItems(items []model.InvoiceItem) []model.InvoiceItem {
	out := make([]model.InvoiceItem, len(items))
	for i, it := range items {
		it.Total = it.LineTotal().Round(2)
		out[i] = it
	}
	return out
}
