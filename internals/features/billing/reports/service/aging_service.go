// file: internals/features/billing/reports/service/aging_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================================================
   Aging report - outstanding balances bucketed by days since
   billing. Read-only; bucket math is pure and covered by tests.
========================================================= */

var agingBucketLabels = []string{"0-30", "31-60", "61-90", "90+"}

// AgingRow is the slice of an invoice the report needs.
type AgingRow struct {
	InvoiceID uuid.UUID       `gorm:"column:invoice_id"`
	BilledAt  time.Time       `gorm:"column:invoice_billed_at"`
	Balance   decimal.Decimal `gorm:"column:invoice_balance"`
}

type AgingBucket struct {
	Bucket string          `json:"bucket"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// BucketAge maps days-since-billed to its collections bucket.
func BucketAge(days int) string {
	switch {
	case days <= 30:
		return "0-30"
	case days <= 60:
		return "31-60"
	case days <= 90:
		return "61-90"
	default:
		return "90+"
	}
}

// BuildAgingReport buckets the rows against now. Every bucket is present
// in the output even when empty, in fixed order.
func BuildAgingReport(rows []AgingRow, now time.Time) []AgingBucket {
	byLabel := make(map[string]*AgingBucket, len(agingBucketLabels))
	out := make([]AgingBucket, len(agingBucketLabels))
	for i, label := range agingBucketLabels {
		out[i] = AgingBucket{Bucket: label, Amount: decimal.Zero}
		byLabel[label] = &out[i]
	}
	for _, r := range rows {
		days := int(now.Sub(r.BilledAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		b := byLabel[BucketAge(days)]
		b.Count++
		b.Amount = b.Amount.Add(r.Balance)
	}
	return out
}

// AgingReport loads every open (non-PAID, non-cancelled) invoice and
// buckets its balance by age.
func AgingReport(ctx context.Context, db *gorm.DB, now time.Time) ([]AgingBucket, error) {
	var rows []AgingRow
	if err := db.WithContext(ctx).
		Table("invoices").
		Select("invoice_id, invoice_billed_at, invoice_balance").
		Where("invoice_deleted_at IS NULL").
		Where("invoice_status <> ?", "PAID").
		Where("invoice_cancelled_at IS NULL").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return BuildAgingReport(rows, now), nil
}
