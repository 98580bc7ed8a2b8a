// file: internals/features/billing/invoices/service/invoice_number_service.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FormatInvoiceNumber renders "INV-<year>-<seq:05d>".
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%05d", year, seq)
}

// NextInvoiceNumber draws the next sequence for the given year from
// invoice_counters and formats it. Must run inside the same transaction
// as the invoice insert: the upsert takes a row lock, so two concurrent
// creations in the same year serialize here instead of racing a
// count-then-insert.
func NextInvoiceNumber(tx *gorm.DB, year int) (string, error) {
	var seq int64
	err := tx.Raw(`
		INSERT INTO invoice_counters (invoice_counter_year, invoice_counter_last_value, invoice_counter_updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (invoice_counter_year)
		DO UPDATE SET invoice_counter_last_value = invoice_counters.invoice_counter_last_value + 1,
		              invoice_counter_updated_at = NOW()
		RETURNING invoice_counter_last_value
	`, year).Scan(&seq).Error
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "failed to reserve invoice number")
	}
	return FormatInvoiceNumber(year, seq), nil
}
