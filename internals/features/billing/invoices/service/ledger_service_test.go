// file: internals/features/billing/invoices/service/ledger_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

func newInvoice(total string) *model.Invoice {
	inv := &model.Invoice{
		InvoiceNumber: "INV-2026-00001",
		InvoiceTotal:  d(total),
	}
	Recalc(inv)
	return inv
}

func payment(amount string) model.PaymentRecord {
	return model.PaymentRecord{
		Amount:     d(amount),
		Method:     model.PaymentMethodCash,
		RecordedBy: uuid.New(),
	}
}

// assertLedgerInvariants checks the derived fields after every mutation:
// amount_paid is the signed ledger sum, balance closes the equation, and
// status follows from the two numbers.
func assertLedgerInvariants(t *testing.T, inv *model.Invoice) {
	t.Helper()
	assert.True(t, inv.InvoiceAmountPaid.Equal(SumPayments(inv.InvoicePayments).Round(2)),
		"amount_paid %s is not the ledger sum", inv.InvoiceAmountPaid)
	assert.True(t, inv.InvoiceBalance.Equal(inv.InvoiceTotal.Sub(inv.InvoiceAmountPaid).Round(2)),
		"balance %s does not close total−paid", inv.InvoiceBalance)
	assert.Equal(t, ResolveStatus(inv.InvoiceTotal, inv.InvoiceAmountPaid), inv.InvoiceStatus)
}

func TestLedger_PaymentLifecycle(t *testing.T) {
	inv := newInvoice("100")
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.InvoiceStatus)

	require.NoError(t, AppendPayment(inv, payment("40")))
	assertLedgerInvariants(t, inv)
	assert.Equal(t, model.InvoiceStatusPartial, inv.InvoiceStatus)
	assert.True(t, inv.InvoiceBalance.Equal(d("60")))

	require.NoError(t, AppendPayment(inv, payment("60")))
	assertLedgerInvariants(t, inv)
	assert.Equal(t, model.InvoiceStatusPaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoiceBalance.IsZero())
	assert.Len(t, inv.InvoicePayments, 2)
}

func TestLedger_PaymentCeiling(t *testing.T) {
	inv := newInvoice("100")
	require.NoError(t, AppendPayment(inv, payment("70")))

	err := AppendPayment(inv, payment("40"))
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// rejected mutation left the aggregate untouched
	assert.Len(t, inv.InvoicePayments, 1)
	assert.True(t, inv.InvoiceBalance.Equal(d("30")))
	assert.Equal(t, model.InvoiceStatusPartial, inv.InvoiceStatus)
}

func TestLedger_PaymentOnPaidInvoiceRejected(t *testing.T) {
	inv := newInvoice("50")
	require.NoError(t, AppendPayment(inv, payment("50")))

	err := AppendPayment(inv, payment("1"))
	require.Error(t, err)
	assert.Len(t, inv.InvoicePayments, 1)
}

func TestLedger_NonPositivePaymentRejected(t *testing.T) {
	inv := newInvoice("50")

	require.Error(t, AppendPayment(inv, payment("0")))
	require.Error(t, AppendPayment(inv, payment("-5")))
	assert.Empty(t, inv.InvoicePayments)
}

func TestLedger_RefundReopensInvoice(t *testing.T) {
	inv := newInvoice("100")
	staff := uuid.New()
	require.NoError(t, AppendPayment(inv, payment("100")))
	require.Equal(t, model.InvoiceStatusPaid, inv.InvoiceStatus)

	require.NoError(t, AppendRefund(inv, d("30"), "double charge", staff))
	assertLedgerInvariants(t, inv)
	assert.Equal(t, model.InvoiceStatusPartial, inv.InvoiceStatus)
	assert.True(t, inv.InvoiceBalance.Equal(d("30")))

	require.NoError(t, AppendRefund(inv, d("70"), "visit cancelled", staff))
	assertLedgerInvariants(t, inv)
	assert.Equal(t, model.InvoiceStatusUnpaid, inv.InvoiceStatus)
	assert.True(t, inv.InvoiceAmountPaid.IsZero())
}

func TestLedger_RefundEntryShape(t *testing.T) {
	inv := newInvoice("100")
	staff := uuid.New()
	require.NoError(t, AppendPayment(inv, payment("100")))
	require.NoError(t, AppendRefund(inv, d("25"), "overcharge", staff))

	rec := inv.InvoicePayments[len(inv.InvoicePayments)-1]
	assert.True(t, rec.Amount.Equal(d("-25")))
	assert.Equal(t, model.PaymentMethodRefund, rec.Method)
	assert.Equal(t, staff, rec.RecordedBy)
	require.NotNil(t, rec.ReceiptNo)
	assert.Equal(t, "RF-INV-2026-00001-02", *rec.ReceiptNo)
	require.NotNil(t, rec.Notes)
	assert.Equal(t, "Refund: overcharge", *rec.Notes)
}

func TestLedger_RefundCeiling(t *testing.T) {
	inv := newInvoice("100")
	staff := uuid.New()
	require.NoError(t, AppendPayment(inv, payment("40")))

	err := AppendRefund(inv, d("50"), "", staff)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	assert.Len(t, inv.InvoicePayments, 1)
	assert.True(t, inv.InvoiceAmountPaid.Equal(d("40")))
}

func TestLedger_SumPaymentsIsSigned(t *testing.T) {
	sum := SumPayments([]model.PaymentRecord{
		{Amount: d("100")},
		{Amount: d("-30")},
		{Amount: d("15")},
	})
	assert.True(t, sum.Equal(d("85")))
}

func TestAppendNote(t *testing.T) {
	inv := newInvoice("10")

	AppendNote(inv, "  ")
	assert.Nil(t, inv.InvoiceNotes)

	AppendNote(inv, "first line")
	require.NotNil(t, inv.InvoiceNotes)
	assert.Equal(t, "first line", *inv.InvoiceNotes)

	AppendNote(inv, "second line")
	assert.Equal(t, "first line\nsecond line", *inv.InvoiceNotes)
}
