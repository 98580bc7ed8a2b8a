// file: internals/features/billing/invoices/service/totals_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func item(desc string, qty, unitPrice string) model.InvoiceItem {
	return model.InvoiceItem{
		Description: desc,
		Quantity:    d(qty),
		UnitPrice:   d(unitPrice),
	}
}

func TestCalcTotals_Basic(t *testing.T) {
	items := []model.InvoiceItem{
		item("Consultation", "1", "80"),
		item("Paracetamol 500mg", "3", "10"),
	}

	got, err := CalcTotals(items, d("10"), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(d("110")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Discount.Equal(d("10")))
	assert.True(t, got.Tax.Equal(decimal.Zero))
	assert.True(t, got.Total.Equal(d("100")))
}

func TestCalcTotals_PercentageWinsOverFixed(t *testing.T) {
	items := []model.InvoiceItem{item("Lab panel", "1", "100")}

	// both supplied: the 20% must be applied, not the fixed 10
	got, err := CalcTotals(items, d("10"), d("20"), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, got.Discount.Equal(d("20")), "discount %s", got.Discount)
	assert.True(t, got.Total.Equal(d("80")))
}

func TestCalcTotals_TaxOnPostDiscountAmount(t *testing.T) {
	items := []model.InvoiceItem{item("Minor surgery", "1", "200")}

	got, err := CalcTotals(items, d("50"), decimal.Zero, d("10"))
	require.NoError(t, err)

	// tax base is 150, not 200
	assert.True(t, got.Tax.Equal(d("15")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(d("165")))
}

func TestCalcTotals_Rounding(t *testing.T) {
	items := []model.InvoiceItem{item("Dressing", "3", "33.33")}

	got, err := CalcTotals(items, decimal.Zero, d("10"), d("7.5"))
	require.NoError(t, err)

	// 99.99 − 10.00 = 89.99; 89.99 × 7.5% = 6.749… → 6.75
	assert.True(t, got.Subtotal.Equal(d("99.99")))
	assert.True(t, got.Discount.Equal(d("10.00")), "discount %s", got.Discount)
	assert.True(t, got.Tax.Equal(d("6.75")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(d("96.74")), "total %s", got.Total)
}

func TestCalcTotals_ExplicitItemTotalWins(t *testing.T) {
	it := item("Bundle", "2", "50")
	it.Total = d("90") // negotiated line price

	got, err := CalcTotals([]model.InvoiceItem{it}, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, got.Subtotal.Equal(d("90")))
}

func TestCalcTotals_Deterministic(t *testing.T) {
	items := []model.InvoiceItem{
		item("Consultation", "1", "80"),
		item("Injection", "2", "12.5"),
	}
	first, err := CalcTotals(items, decimal.Zero, d("15"), d("11"))
	require.NoError(t, err)
	second, err := CalcTotals(items, decimal.Zero, d("15"), d("11"))
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Discount.Equal(second.Discount))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestCalcTotals_Rejections(t *testing.T) {
	items := []model.InvoiceItem{item("Consultation", "1", "100")}

	cases := []struct {
		name        string
		discount    decimal.Decimal
		discountPct decimal.Decimal
		taxRate     decimal.Decimal
	}{
		{"negative discount", d("-1"), decimal.Zero, decimal.Zero},
		{"pct above 100", decimal.Zero, d("101"), decimal.Zero},
		{"negative pct", decimal.Zero, d("-5"), decimal.Zero},
		{"tax above 100", decimal.Zero, decimal.Zero, d("150")},
		{"negative tax", decimal.Zero, decimal.Zero, d("-1")},
		{"discount exceeds subtotal", d("200"), decimal.Zero, decimal.Zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalcTotals(items, tc.discount, tc.discountPct, tc.taxRate)
			require.Error(t, err)

			var fe *fiber.Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		})
	}
}

func TestNormalizeItems_FillsLineTotals(t *testing.T) {
	in := []model.InvoiceItem{
		item("Paracetamol 500mg", "3", "10"),
	}
	out := NormalizeItems(in)

	require.Len(t, out, 1)
	assert.True(t, out[0].Total.Equal(d("30")))
	// input slice untouched
	assert.True(t, in[0].Total.IsZero())
}
