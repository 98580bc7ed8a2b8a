// file: internals/features/billing/invoices/service/status_service.go
package service

import (
	"github.com/shopspring/decimal"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

// ResolveStatus derives the lifecycle status from the two canonical
// numbers. Callers never set status directly.
//
//	balance <= 0                 → PAID
//	balance > 0 && amountPaid > 0 → PARTIAL
//	otherwise                    → UNPAID
func ResolveStatus(total, amountPaid decimal.Decimal) model.InvoiceStatus {
	balance := total.Sub(amountPaid)
	switch {
	case balance.LessThanOrEqual(decimal.Zero):
		return model.InvoiceStatusPaid
	case amountPaid.IsPositive():
		return model.InvoiceStatusPartial
	default:
		return model.InvoiceStatusUnpaid
	}
}
