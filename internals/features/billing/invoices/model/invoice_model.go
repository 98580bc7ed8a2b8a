// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	// Ledger records persist `amount` as a plain JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

/* =========================================================
   ENUM - invoice status (derived from total vs amount_paid)
========================================================= */

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

/* =========================================================
   Payment methods (free string; REFUND is reserved)
========================================================= */

const (
	PaymentMethodCash      = "CASH"
	PaymentMethodCard      = "CARD"
	PaymentMethodTransfer  = "TRANSFER"
	PaymentMethodInsurance = "INSURANCE"
	PaymentMethodRefund    = "REFUND"
)

/* =========================================================
   JSONB payloads - line items & signed payment ledger
========================================================= */

// InvoiceItem is one billed line. Total may be caller-supplied; when zero
// it falls back to Quantity * UnitPrice.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

func (it InvoiceItem) LineTotal() decimal.Decimal {
	if !it.Total.IsZero() {
		return it.Total
	}
	return it.Quantity.Mul(it.UnitPrice)
}

// PaymentRecord is one signed ledger entry. Positive = payment,
// negative = refund. amount_paid is always the sum of Amounts.
type PaymentRecord struct {
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	ReceiptNo  *string         `json:"receiptNo,omitempty"`
	RecordedBy uuid.UUID       `json:"recordedBy"`
	Notes      *string         `json:"notes,omitempty"`
}

/* =========================================================
   MODEL
========================================================= */

type Invoice struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Human-readable number, INV-<year>-<5 digit seq>, unique forever
	InvoiceNumber string `gorm:"column:invoice_number;type:varchar(20);not null;uniqueIndex:uq_invoice_number" json:"invoice_number"`

	// FK → patients(patient_id); non-owning reference
	InvoicePatientID uuid.UUID `gorm:"column:invoice_patient_id;type:uuid;not null;index:ix_invoice_patient" json:"invoice_patient_id"`

	// FK → visits(visit_id); at most one invoice per visit
	InvoiceVisitID *uuid.UUID `gorm:"column:invoice_visit_id;type:uuid;uniqueIndex:uq_invoice_visit" json:"invoice_visit_id,omitempty"`

	// Line items (jsonb)
	InvoiceItems datatypes.JSONSlice[InvoiceItem] `gorm:"column:invoice_items;type:jsonb;not null" json:"invoice_items"`

	// Derived money columns (TotalsCalculator output)
	InvoiceSubtotal           decimal.Decimal `gorm:"column:invoice_subtotal;type:numeric(18,2);not null" json:"invoice_subtotal"`
	InvoiceDiscount           decimal.Decimal `gorm:"column:invoice_discount;type:numeric(18,2);not null" json:"invoice_discount"`
	InvoiceDiscountPercentage decimal.Decimal `gorm:"column:invoice_discount_percentage;type:numeric(5,2);not null" json:"invoice_discount_percentage"`
	InvoiceDiscountReason     *string         `gorm:"column:invoice_discount_reason" json:"invoice_discount_reason,omitempty"`
	InvoiceTaxRate            decimal.Decimal `gorm:"column:invoice_tax_rate;type:numeric(5,2);not null" json:"invoice_tax_rate"`
	InvoiceTax                decimal.Decimal `gorm:"column:invoice_tax;type:numeric(18,2);not null" json:"invoice_tax"`
	InvoiceTotal              decimal.Decimal `gorm:"column:invoice_total;type:numeric(18,2);not null" json:"invoice_total"`

	// Ledger-derived
	InvoiceAmountPaid decimal.Decimal `gorm:"column:invoice_amount_paid;type:numeric(18,2);not null" json:"invoice_amount_paid"`
	InvoiceBalance    decimal.Decimal `gorm:"column:invoice_balance;type:numeric(18,2);not null" json:"invoice_balance"`
	InvoiceStatus     InvoiceStatus   `gorm:"column:invoice_status;type:varchar(10);not null;default:'UNPAID';index:ix_invoice_status" json:"invoice_status"`

	// Append-only signed payment ledger (jsonb array)
	InvoicePayments datatypes.JSONSlice[PaymentRecord] `gorm:"column:invoice_payments;type:jsonb;not null;default:'[]'" json:"invoice_payments"`

	// Issuance (immutable after create)
	InvoiceBilledBy uuid.UUID `gorm:"column:invoice_billed_by;type:uuid;not null" json:"invoice_billed_by"`
	InvoiceBilledAt time.Time `gorm:"column:invoice_billed_at;not null;index:ix_invoice_billed_at" json:"invoice_billed_at"`

	// Free text, appendable
	InvoiceNotes *string `gorm:"column:invoice_notes" json:"invoice_notes,omitempty"`

	// Soft cancel marker (status forced back to UNPAID, ledger kept)
	InvoiceCancelledAt *time.Time `gorm:"column:invoice_cancelled_at" json:"invoice_cancelled_at,omitempty"`

	// Timestamps
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now()" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }

/* =========================================================
   HOOKS - explicit timestamps
========================================================= */

func (m *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	if m.InvoiceBilledAt.IsZero() {
		m.InvoiceBilledAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

/* =========================================================
   Helpers
========================================================= */

func (m *Invoice) IsPaid() bool      { return m.InvoiceStatus == InvoiceStatusPaid }
func (m *Invoice) IsCancelled() bool { return m.InvoiceCancelledAt != nil }
