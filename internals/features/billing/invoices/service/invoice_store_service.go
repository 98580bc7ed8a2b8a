// file: internals/features/billing/invoices/service/invoice_store_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "klinikku_backend/internals/features/billing/invoices/model"
	patientsvc "klinikku_backend/internals/features/clinical/patients/service"
	visitsvc "klinikku_backend/internals/features/clinical/visits/service"
)

/* =========================================================
   InvoiceStore - every mutation runs in one transaction with
   the invoice row locked FOR UPDATE, so read-modify-write on
   the jsonb ledger is serialized per invoice id. Validation
   happens against the locked state; a rejected mutation never
   partially applies.
========================================================= */

type CreateInvoiceInput struct {
	PatientID          uuid.UUID
	VisitID            *uuid.UUID
	Items              []model.InvoiceItem
	Discount           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountReason     *string
	TaxRate            decimal.Decimal
	Notes              *string
	BilledBy           uuid.UUID
}

type UpdateInvoiceInput struct {
	Items              []model.InvoiceItem // nil = keep current
	Discount           *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	DiscountReason     *string
	TaxRate            *decimal.Decimal
	Notes              *string
}

type DiscountInput struct {
	Discount           *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	DiscountReason     *string
}

type PaymentInput struct {
	Amount     decimal.Decimal
	Method     string
	ReceiptNo  *string
	Notes      *string
	RecordedBy uuid.UUID
}

type RefundInput struct {
	Amount     decimal.Decimal
	Reason     string
	RecordedBy uuid.UUID
}

// lockInvoice loads the invoice FOR UPDATE inside tx.
func lockInvoice(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invoice_id = ? AND invoice_deleted_at IS NULL", id).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice validates the patient/visit references, computes totals,
// reserves the next invoice number and persists the new aggregate -
// all inside one transaction.
func CreateInvoice(ctx context.Context, db *gorm.DB, in CreateInvoiceInput) (*model.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invoice requires at least one item")
	}

	var created *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		patient, err := patientsvc.GetPatient(ctx, tx, in.PatientID)
		if err != nil {
			return err
		}

		if in.VisitID != nil {
			visit, err := visitsvc.GetVisit(ctx, tx, *in.VisitID)
			if err != nil {
				return err
			}
			var n int64
			if err := tx.WithContext(ctx).
				Model(&model.Invoice{}).
				Where("invoice_visit_id = ? AND invoice_deleted_at IS NULL", *in.VisitID).
				Count(&n).Error; err != nil {
				return err
			}
			if err := ValidateVisitReference(patient.PatientID, visit.VisitPatientID, n); err != nil {
				return err
			}
		}

		items := NormalizeItems(in.Items)
		totals, err := CalcTotals(items, in.Discount, in.DiscountPercentage, in.TaxRate)
		if err != nil {
			return err
		}

		number, err := NextInvoiceNumber(tx, time.Now().Year())
		if err != nil {
			return err
		}

		inv := model.Invoice{
			InvoiceNumber:             number,
			InvoicePatientID:          patient.PatientID,
			InvoiceVisitID:            in.VisitID,
			InvoiceItems:              items,
			InvoiceSubtotal:           totals.Subtotal,
			InvoiceDiscount:           totals.Discount,
			InvoiceDiscountPercentage: in.DiscountPercentage.Round(2),
			InvoiceDiscountReason:     discountReason(totals.Discount, in.DiscountReason),
			InvoiceTaxRate:            in.TaxRate.Round(2),
			InvoiceTax:                totals.Tax,
			InvoiceTotal:              totals.Total,
			InvoiceAmountPaid:         decimal.Zero,
			InvoiceBalance:            totals.Total,
			InvoiceStatus:             ResolveStatus(totals.Total, decimal.Zero),
			InvoicePayments:           []model.PaymentRecord{},
			InvoiceBilledBy:           in.BilledBy,
			InvoiceBilledAt:           time.Now(),
			InvoiceNotes:              in.Notes,
		}
		if err := tx.Create(&inv).Error; err != nil {
			if isUniqueViolation(err) {
				// uq_invoice_visit backs invariant 5 even across racing creations
				return fiber.NewError(fiber.StatusConflict, "an invoice already exists for this visit")
			}
			return err
		}
		created = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateInvoice replaces the supplied pricing fields, reruns the totals
// calculator and re-derives balance/status against the unchanged ledger.
// Forbidden once the invoice is PAID.
func UpdateInvoice(ctx context.Context, db *gorm.DB, id uuid.UUID, in UpdateInvoiceInput) (*model.Invoice, error) {
	var out *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if inv.IsPaid() {
			return fiber.NewError(fiber.StatusBadRequest, "paid invoice can no longer be edited")
		}

		if in.Items != nil {
			if len(in.Items) == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "invoice requires at least one item")
			}
			inv.InvoiceItems = NormalizeItems(in.Items)
		}
		if in.Discount != nil {
			inv.InvoiceDiscount = *in.Discount
		}
		if in.DiscountPercentage != nil {
			inv.InvoiceDiscountPercentage = in.DiscountPercentage.Round(2)
		}
		if in.TaxRate != nil {
			inv.InvoiceTaxRate = in.TaxRate.Round(2)
		}
		if in.DiscountReason != nil {
			inv.InvoiceDiscountReason = in.DiscountReason
		}
		if in.Notes != nil {
			inv.InvoiceNotes = in.Notes
		}

		totals, err := CalcTotals(inv.InvoiceItems, inv.InvoiceDiscount, inv.InvoiceDiscountPercentage, inv.InvoiceTaxRate)
		if err != nil {
			return err
		}
		applyTotals(inv, totals)
		Recalc(inv)

		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyDiscount reruns the calculator with the new discount against the
// existing items and tax rate. The payment ledger is untouched.
func ApplyDiscount(ctx context.Context, db *gorm.DB, id uuid.UUID, in DiscountInput) (*model.Invoice, error) {
	var out *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if inv.IsPaid() {
			return fiber.NewError(fiber.StatusBadRequest, "discount cannot be applied to a paid invoice")
		}

		if in.Discount != nil {
			inv.InvoiceDiscount = *in.Discount
		}
		if in.DiscountPercentage != nil {
			inv.InvoiceDiscountPercentage = in.DiscountPercentage.Round(2)
		}

		totals, err := CalcTotals(inv.InvoiceItems, inv.InvoiceDiscount, inv.InvoiceDiscountPercentage, inv.InvoiceTaxRate)
		if err != nil {
			return err
		}
		applyTotals(inv, totals)
		inv.InvoiceDiscountReason = discountReason(totals.Discount, in.DiscountReason)
		Recalc(inv)

		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddPayment appends a positive ledger entry while the row is locked.
func AddPayment(ctx context.Context, db *gorm.DB, id uuid.UUID, in PaymentInput) (*model.Invoice, error) {
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if method == "" {
		method = model.PaymentMethodCash
	}
	if method == model.PaymentMethodRefund {
		return nil, fiber.NewError(fiber.StatusBadRequest, "method REFUND is reserved for the refund endpoint")
	}

	var out *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		rec := model.PaymentRecord{
			Date:       time.Now(),
			Amount:     in.Amount.Round(2),
			Method:     method,
			ReceiptNo:  in.ReceiptNo,
			RecordedBy: in.RecordedBy,
			Notes:      in.Notes,
		}
		if err := AppendPayment(inv, rec); err != nil {
			return err
		}
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessRefund appends a negative ledger entry. Allowed on any status,
// including PAID, and may reopen the invoice.
func ProcessRefund(ctx context.Context, db *gorm.DB, id uuid.UUID, in RefundInput) (*model.Invoice, error) {
	var out *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := AppendRefund(inv, in.Amount.Round(2), in.Reason, in.RecordedBy); err != nil {
			return err
		}
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelInvoice is the soft "delete": it forces status back to UNPAID,
// stamps cancelled_at and appends an annotation. Ledger and totals stay
// as they are; nothing is physically removed. Forbidden once PAID.
func CancelInvoice(ctx context.Context, db *gorm.DB, id uuid.UUID, note string, cancelledBy uuid.UUID) (*model.Invoice, error) {
	var out *model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := EnsureCancellable(inv); err != nil {
			return err
		}

		now := time.Now()
		inv.InvoiceCancelledAt = &now
		inv.InvoiceStatus = model.InvoiceStatusUnpaid
		line := "Cancelled by " + cancelledBy.String()
		if s := strings.TrimSpace(note); s != "" {
			line += ": " + s
		}
		AppendNote(inv, line)

		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* ===================== guards ===================== */

// ValidateVisitReference enforces the visit linkage rules at creation:
// the visit must belong to the invoiced patient, and a visit carries at
// most one live invoice. existing is the count of non-deleted invoices
// already bound to the visit, taken inside the creation transaction.
func ValidateVisitReference(patientID, visitPatientID uuid.UUID, existing int64) error {
	if visitPatientID != patientID {
		return fiber.NewError(fiber.StatusBadRequest, "visit does not belong to this patient")
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusConflict, "an invoice already exists for this visit")
	}
	return nil
}

// EnsureCancellable rejects cancelling a PAID invoice and cancelling twice.
func EnsureCancellable(inv *model.Invoice) error {
	if inv.IsPaid() {
		return fiber.NewError(fiber.StatusBadRequest, "paid invoice cannot be cancelled")
	}
	if inv.IsCancelled() {
		return fiber.NewError(fiber.StatusBadRequest, "invoice is already cancelled")
	}
	return nil
}

/* ===================== internals ===================== */

func applyTotals(inv *model.Invoice, t Totals) {
	inv.InvoiceSubtotal = t.Subtotal
	inv.InvoiceDiscount = t.Discount
	inv.InvoiceTax = t.Tax
	inv.InvoiceTotal = t.Total
}

func discountReason(discount decimal.Decimal, reason *string) *string {
	if !discount.IsPositive() {
		return nil
	}
	return reason
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
