// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "klinikku_backend/internals/features/billing/invoices/model"
	svc "klinikku_backend/internals/features/billing/invoices/service"
)

////////////////////////////////////////////////////////////////////////////////
// INVOICES - DTO
////////////////////////////////////////////////////////////////////////////////

// Line item as accepted on the wire. Total is optional; zero means
// "compute from quantity * unit_price".
type InvoiceItemDTO struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceCreateDTO struct {
	InvoicePatientID          uuid.UUID        `json:"invoice_patient_id" validate:"required"`
	InvoiceVisitID            *uuid.UUID       `json:"invoice_visit_id,omitempty"`
	InvoiceItems              []InvoiceItemDTO `json:"invoice_items" validate:"required,min=1,dive"`
	InvoiceDiscount           decimal.Decimal  `json:"invoice_discount"`
	InvoiceDiscountPercentage decimal.Decimal  `json:"invoice_discount_percentage"`
	InvoiceDiscountReason     *string          `json:"invoice_discount_reason,omitempty"`
	InvoiceTaxRate            decimal.Decimal  `json:"invoice_tax_rate"`
	InvoiceNotes              *string          `json:"invoice_notes,omitempty"`
}

// Update (partial) - fields not supplied are retained. Not usable once PAID.
type InvoiceUpdateDTO struct {
	InvoiceItems              *[]InvoiceItemDTO `json:"invoice_items,omitempty" validate:"omitempty,min=1,dive"`
	InvoiceDiscount           *decimal.Decimal  `json:"invoice_discount,omitempty"`
	InvoiceDiscountPercentage *decimal.Decimal  `json:"invoice_discount_percentage,omitempty"`
	InvoiceDiscountReason     *string           `json:"invoice_discount_reason,omitempty"`
	InvoiceTaxRate            *decimal.Decimal  `json:"invoice_tax_rate,omitempty"`
	InvoiceNotes              *string           `json:"invoice_notes,omitempty"`
}

type InvoiceDiscountDTO struct {
	InvoiceDiscount           *decimal.Decimal `json:"invoice_discount,omitempty"`
	InvoiceDiscountPercentage *decimal.Decimal `json:"invoice_discount_percentage,omitempty"`
	InvoiceDiscountReason     *string          `json:"invoice_discount_reason,omitempty"`
}

type InvoiceCancelDTO struct {
	Note *string `json:"note,omitempty"`
}

// Response
type InvoiceResponse struct {
	InvoiceID     uuid.UUID  `json:"invoice_id"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoicePatientID uuid.UUID `json:"invoice_patient_id"`
	InvoiceVisitID   *uuid.UUID `json:"invoice_visit_id,omitempty"`

	InvoiceItems []model.InvoiceItem `json:"invoice_items"`

	InvoiceSubtotal           decimal.Decimal `json:"invoice_subtotal"`
	InvoiceDiscount           decimal.Decimal `json:"invoice_discount"`
	InvoiceDiscountPercentage decimal.Decimal `json:"invoice_discount_percentage"`
	InvoiceDiscountReason     *string         `json:"invoice_discount_reason,omitempty"`
	InvoiceTaxRate            decimal.Decimal `json:"invoice_tax_rate"`
	InvoiceTax                decimal.Decimal `json:"invoice_tax"`
	InvoiceTotal              decimal.Decimal `json:"invoice_total"`

	InvoiceAmountPaid decimal.Decimal     `json:"invoice_amount_paid"`
	InvoiceBalance    decimal.Decimal     `json:"invoice_balance"`
	InvoiceStatus     model.InvoiceStatus `json:"invoice_status"`

	InvoicePayments []model.PaymentRecord `json:"invoice_payments"`

	InvoiceBilledBy    uuid.UUID  `json:"invoice_billed_by"`
	InvoiceBilledAt    time.Time  `json:"invoice_billed_at"`
	InvoiceNotes       *string    `json:"invoice_notes,omitempty"`
	InvoiceCancelledAt *time.Time `json:"invoice_cancelled_at,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time `json:"invoice_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToModelItems(in []InvoiceItemDTO) []model.InvoiceItem {
	out := make([]model.InvoiceItem, len(in))
	for i, it := range in {
		out[i] = model.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	return out
}

func (in InvoiceCreateDTO) ToCreateInput(billedBy uuid.UUID) svc.CreateInvoiceInput {
	return svc.CreateInvoiceInput{
		PatientID:          in.InvoicePatientID,
		VisitID:            in.InvoiceVisitID,
		Items:              ToModelItems(in.InvoiceItems),
		Discount:           in.InvoiceDiscount,
		DiscountPercentage: in.InvoiceDiscountPercentage,
		DiscountReason:     in.InvoiceDiscountReason,
		TaxRate:            in.InvoiceTaxRate,
		Notes:              in.InvoiceNotes,
		BilledBy:           billedBy,
	}
}

func (in InvoiceUpdateDTO) ToUpdateInput() svc.UpdateInvoiceInput {
	out := svc.UpdateInvoiceInput{
		Discount:           in.InvoiceDiscount,
		DiscountPercentage: in.InvoiceDiscountPercentage,
		DiscountReason:     in.InvoiceDiscountReason,
		TaxRate:            in.InvoiceTaxRate,
		Notes:              in.InvoiceNotes,
	}
	if in.InvoiceItems != nil {
		out.Items = ToModelItems(*in.InvoiceItems)
	}
	return out
}

func (in InvoiceDiscountDTO) ToDiscountInput() svc.DiscountInput {
	return svc.DiscountInput{
		Discount:           in.InvoiceDiscount,
		DiscountPercentage: in.InvoiceDiscountPercentage,
		DiscountReason:     in.InvoiceDiscountReason,
	}
}

func ToInvoiceResponse(m model.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:                 m.InvoiceID,
		InvoiceNumber:             m.InvoiceNumber,
		InvoicePatientID:          m.InvoicePatientID,
		InvoiceVisitID:            m.InvoiceVisitID,
		InvoiceItems:              m.InvoiceItems,
		InvoiceSubtotal:           m.InvoiceSubtotal,
		InvoiceDiscount:           m.InvoiceDiscount,
		InvoiceDiscountPercentage: m.InvoiceDiscountPercentage,
		InvoiceDiscountReason:     m.InvoiceDiscountReason,
		InvoiceTaxRate:            m.InvoiceTaxRate,
		InvoiceTax:                m.InvoiceTax,
		InvoiceTotal:              m.InvoiceTotal,
		InvoiceAmountPaid:         m.InvoiceAmountPaid,
		InvoiceBalance:            m.InvoiceBalance,
		InvoiceStatus:             m.InvoiceStatus,
		InvoicePayments:           m.InvoicePayments,
		InvoiceBilledBy:           m.InvoiceBilledBy,
		InvoiceBilledAt:           m.InvoiceBilledAt,
		InvoiceNotes:              m.InvoiceNotes,
		InvoiceCancelledAt:        m.InvoiceCancelledAt,
		InvoiceCreatedAt:          m.InvoiceCreatedAt,
		InvoiceUpdatedAt:          m.InvoiceUpdatedAt,
	}
}

func ToInvoiceResponses(list []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(list))
	for i, m := range list {
		out[i] = ToInvoiceResponse(m)
	}
	return out
}
