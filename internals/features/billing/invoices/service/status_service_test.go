// file: internals/features/billing/invoices/service/status_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "klinikku_backend/internals/features/billing/invoices/model"
)

func TestResolveStatus(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		amountPaid string
		want       model.InvoiceStatus
	}{
		{"nothing paid", "100", "0", model.InvoiceStatusUnpaid},
		{"partially paid", "100", "40", model.InvoiceStatusPartial},
		{"fully paid", "100", "100", model.InvoiceStatusPaid},
		{"overpaid still paid", "100", "120", model.InvoiceStatusPaid},
		{"tiny remainder is partial", "100", "99.99", model.InvoiceStatusPartial},
		{"zero total is paid", "0", "0", model.InvoiceStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveStatus(d(tc.total), d(tc.amountPaid))
			assert.Equal(t, tc.want, got)
		})
	}
}
