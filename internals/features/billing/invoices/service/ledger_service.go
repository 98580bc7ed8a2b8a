// file: internals/features/billing/invoices/service/ledger_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

/* =========================================================
   Pure ledger mutations on the in-memory aggregate.
   Persistence and locking live in invoice_store_service.go;
   everything here is deterministic and side-effect free.
========================================================= */

// SumPayments returns the signed sum of all ledger entries.
func SumPayments(payments []model.PaymentRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Recalc re-derives amount_paid, balance and status from the ledger and
// the current total. Invariants 2-4 hold on return.
func Recalc(inv *model.Invoice) {
	inv.InvoiceAmountPaid = SumPayments(inv.InvoicePayments).Round(2)
	inv.InvoiceBalance = inv.InvoiceTotal.Sub(inv.InvoiceAmountPaid).Round(2)
	inv.InvoiceStatus = ResolveStatus(inv.InvoiceTotal, inv.InvoiceAmountPaid)
}

// AppendPayment validates and appends a positive ledger entry.
// Rejected mutations leave the invoice untouched.
func AppendPayment(inv *model.Invoice, rec model.PaymentRecord) error {
	if !rec.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "payment amount must be greater than zero")
	}
	if inv.IsPaid() {
		return fiber.NewError(fiber.StatusBadRequest, "invoice is already fully paid")
	}
	if rec.Amount.GreaterThan(inv.InvoiceBalance) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("payment amount %s exceeds outstanding balance %s", rec.Amount, inv.InvoiceBalance))
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	inv.InvoicePayments = append(inv.InvoicePayments, rec)
	Recalc(inv)
	return nil
}

// AppendRefund validates and appends a negative ledger entry with a
// synthesized receipt number. Refunds are the one mutation allowed on a
// PAID invoice and may reopen it to PARTIAL or UNPAID.
func AppendRefund(inv *model.Invoice, amount decimal.Decimal, reason string, recordedBy uuid.UUID) error {
	if !amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "refund amount must be greater than zero")
	}
	if amount.GreaterThan(inv.InvoiceAmountPaid) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("refund amount %s exceeds amount paid %s", amount, inv.InvoiceAmountPaid))
	}

	receipt := fmt.Sprintf("RF-%s-%02d", inv.InvoiceNumber, len(inv.InvoicePayments)+1)
	note := "Refund"
	if s := strings.TrimSpace(reason); s != "" {
		note = "Refund: " + s
	}

	rec := model.PaymentRecord{
		Date:       time.Now(),
		Amount:     amount.Neg(),
		Method:     model.PaymentMethodRefund,
		ReceiptNo:  &receipt,
		RecordedBy: recordedBy,
		Notes:      &note,
	}
	inv.InvoicePayments = append(inv.InvoicePayments, rec)
	Recalc(inv)
	return nil
}

// AppendNote appends a line to the free-text notes.
func AppendNote(inv *model.Invoice, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if inv.InvoiceNotes == nil || strings.TrimSpace(*inv.InvoiceNotes) == "" {
		inv.InvoiceNotes = &line
		return
	}
	joined := *inv.InvoiceNotes + "\n" + line
	inv.InvoiceNotes = &joined
}
