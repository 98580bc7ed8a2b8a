// file: internals/features/billing/invoices/service/invoice_number_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-00001", FormatInvoiceNumber(2026, 1))
	assert.Equal(t, "INV-2026-00042", FormatInvoiceNumber(2026, 42))
	assert.Equal(t, "INV-2027-12345", FormatInvoiceNumber(2027, 12345))
	// sequences past the pad width keep growing instead of wrapping
	assert.Equal(t, "INV-2026-123456", FormatInvoiceNumber(2026, 123456))
}
