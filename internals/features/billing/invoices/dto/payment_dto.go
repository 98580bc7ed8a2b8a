// file: internals/features/billing/invoices/dto/payment_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	svc "klinikku_backend/internals/features/billing/invoices/service"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS & REFUNDS - DTO
////////////////////////////////////////////////////////////////////////////////

type PaymentCreateDTO struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	ReceiptNo *string         `json:"receipt_no,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

type RefundCreateDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"required"`
}

func (in PaymentCreateDTO) ToPaymentInput(recordedBy uuid.UUID) svc.PaymentInput {
	return svc.PaymentInput{
		Amount:     in.Amount,
		Method:     in.Method,
		ReceiptNo:  in.ReceiptNo,
		Notes:      in.Notes,
		RecordedBy: recordedBy,
	}
}

func (in RefundCreateDTO) ToRefundInput(recordedBy uuid.UUID) svc.RefundInput {
	return svc.RefundInput{
		Amount:     in.Amount,
		Reason:     in.Reason,
		RecordedBy: recordedBy,
	}
}
