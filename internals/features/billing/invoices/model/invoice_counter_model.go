// file: internals/features/billing/invoices/model/invoice_counter_model.go
package model

import "time"

// InvoiceCounter holds the last issued sequence per calendar year.
// The row is upserted atomically inside the invoice-creation transaction
// so two concurrent creations can never draw the same number.
type InvoiceCounter struct {
	InvoiceCounterYear      int       `gorm:"column:invoice_counter_year;primaryKey" json:"invoice_counter_year"`
	InvoiceCounterLastValue int64     `gorm:"column:invoice_counter_last_value;not null;default:0" json:"invoice_counter_last_value"`
	InvoiceCounterUpdatedAt time.Time `gorm:"column:invoice_counter_updated_at;not null;default:now()" json:"invoice_counter_updated_at"`
}

func (InvoiceCounter) TableName() string { return "invoice_counters" }
