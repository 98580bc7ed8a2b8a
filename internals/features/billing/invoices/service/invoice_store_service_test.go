// file: internals/features/billing/invoices/service/invoice_store_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

func TestValidateVisitReference_OneInvoicePerVisit(t *testing.T) {
	patientID := uuid.New()

	// first creation for the visit
	require.NoError(t, ValidateVisitReference(patientID, patientID, 0))

	// second creation for the same visit must conflict
	err := ValidateVisitReference(patientID, patientID, 1)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestValidateVisitReference_VisitMustBelongToPatient(t *testing.T) {
	err := ValidateVisitReference(uuid.New(), uuid.New(), 0)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

// The uq_invoice_visit unique index backs the same rule when two
// creations race past the count; the driver error must map to 409.
func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_invoice_visit" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueViolation(errors.New("pq: duplicate key value violates unique constraint")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

func TestEnsureCancellable(t *testing.T) {
	inv := newInvoice("100")
	require.NoError(t, EnsureCancellable(inv))

	paid := newInvoice("100")
	require.NoError(t, AppendPayment(paid, payment("100")))
	err := EnsureCancellable(paid)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	cancelled := newInvoice("100")
	now := time.Now()
	cancelled.InvoiceCancelledAt = &now
	cancelled.InvoiceStatus = model.InvoiceStatusUnpaid
	err = EnsureCancellable(cancelled)
	require.Error(t, err)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
