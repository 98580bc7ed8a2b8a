// file: internals/features/billing/reports/service/revenue_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================================================
   RevenueAggregator - read-only projections over the invoice
   store, optionally windowed on billed_at.
========================================================= */

type StatusBreakdown struct {
	Status   string          `gorm:"column:status" json:"status"`
	Count    int64           `gorm:"column:count" json:"count"`
	TotalSum decimal.Decimal `gorm:"column:total_sum" json:"total_sum"`
	PaidSum  decimal.Decimal `gorm:"column:paid_sum" json:"paid_sum"`
}

type MethodBreakdown struct {
	Method  string          `gorm:"column:method" json:"method"`
	Entries int64           `gorm:"column:entries" json:"entries"`
	Amount  decimal.Decimal `gorm:"column:amount" json:"amount"`
}

type RevenueStatsResult struct {
	InvoiceCount int64             `json:"invoice_count"`
	Revenue      decimal.Decimal   `json:"revenue"`
	Collected    decimal.Decimal   `json:"collected"`
	Outstanding  decimal.Decimal   `json:"outstanding"`
	ByStatus     []StatusBreakdown `json:"by_status"`
	ByMethod     []MethodBreakdown `json:"by_method"`
}

type PeriodRevenue struct {
	Period    time.Time       `gorm:"column:period" json:"period"`
	Count     int64           `gorm:"column:count" json:"count"`
	Revenue   decimal.Decimal `gorm:"column:revenue" json:"revenue"`
	Collected decimal.Decimal `gorm:"column:collected" json:"collected"`
}

func rangeScope(db *gorm.DB, from, to *time.Time) *gorm.DB {
	q := db.Where("invoice_deleted_at IS NULL")
	if from != nil {
		q = q.Where("invoice_billed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("invoice_billed_at < ?", *to)
	}
	return q
}

// RevenueStats returns totals, per-status counts/sums and the
// payment-method breakdown. Ledger amounts are summed signed, so
// refunds net out (REFUND entries show as their own negative bucket).
func RevenueStats(ctx context.Context, db *gorm.DB, from, to *time.Time) (*RevenueStatsResult, error) {
	out := &RevenueStatsResult{
		Revenue:     decimal.Zero,
		Collected:   decimal.Zero,
		Outstanding: decimal.Zero,
	}

	var head struct {
		Count       int64           `gorm:"column:count"`
		Revenue     decimal.Decimal `gorm:"column:revenue"`
		Collected   decimal.Decimal `gorm:"column:collected"`
		Outstanding decimal.Decimal `gorm:"column:outstanding"`
	}
	if err := rangeScope(db.WithContext(ctx).Table("invoices"), from, to).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(invoice_total), 0) AS revenue,
			COALESCE(SUM(invoice_amount_paid), 0) AS collected,
			COALESCE(SUM(invoice_balance), 0) AS outstanding`).
		Scan(&head).Error; err != nil {
		return nil, err
	}
	out.InvoiceCount = head.Count
	out.Revenue = head.Revenue
	out.Collected = head.Collected
	out.Outstanding = head.Outstanding

	if err := rangeScope(db.WithContext(ctx).Table("invoices"), from, to).
		Select(`invoice_status AS status,
			COUNT(*) AS count,
			COALESCE(SUM(invoice_total), 0) AS total_sum,
			COALESCE(SUM(invoice_amount_paid), 0) AS paid_sum`).
		Group("invoice_status").
		Order("invoice_status").
		Scan(&out.ByStatus).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(db.WithContext(ctx).Table("invoices"), from, to).
		Select(`p->>'method' AS method,
			COUNT(*) AS entries,
			COALESCE(SUM((p->>'amount')::numeric), 0) AS amount`).
		Joins("CROSS JOIN LATERAL jsonb_array_elements(invoice_payments) AS p").
		Group("p->>'method'").
		Order("p->>'method'").
		Scan(&out.ByMethod).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// RevenueSeries groups revenue by billed_at period. Granularity is
// whitelisted straight into date_trunc.
func RevenueSeries(ctx context.Context, db *gorm.DB, granularity string, from, to *time.Time) ([]PeriodRevenue, error) {
	trunc, ok := map[string]string{
		"daily":   "day",
		"weekly":  "week",
		"monthly": "month",
		"yearly":  "year",
	}[granularity]
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown report granularity")
	}

	var rows []PeriodRevenue
	if err := rangeScope(db.WithContext(ctx).Table("invoices"), from, to).
		Select(`date_trunc('`+trunc+`', invoice_billed_at) AS period,
			COUNT(*) AS count,
			COALESCE(SUM(invoice_total), 0) AS revenue,
			COALESCE(SUM(invoice_amount_paid), 0) AS collected`).
		Group("period").
		Order("period").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
