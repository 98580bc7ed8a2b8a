// file: internals/features/billing/reports/controller/financial_report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svc "klinikku_backend/internals/features/billing/reports/service"
	helper "klinikku_backend/internals/helpers"
)

type FinancialReportHandler struct {
	DB *gorm.DB
}

/* =========================
   Aging (GET /reports/financial/aging)
========================= */

func (h *FinancialReportHandler) Aging(c *fiber.Ctx) error {
	buckets, err := svc.AgingReport(c.UserContext(), h.DB, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "aging report", fiber.Map{
		"as_of":   time.Now(),
		"buckets": buckets,
	})
}

/* =========================
   Revenue series (GET /reports/financial/:granularity)
   granularity ∈ daily|weekly|monthly|yearly
========================= */

func (h *FinancialReportHandler) RevenueSeries(c *fiber.Ctx) error {
	granularity := strings.ToLower(strings.TrimSpace(c.Params("granularity")))
	from, to := parseDateRange(c)

	rows, err := svc.RevenueSeries(c.UserContext(), h.DB, granularity, from, to)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, granularity+" revenue report", rows)
}

/* =========================
   Payment methods (GET /reports/financial/payment-methods)
========================= */

func (h *FinancialReportHandler) PaymentMethods(c *fiber.Ctx) error {
	from, to := parseDateRange(c)
	stats, err := svc.RevenueStats(c.UserContext(), h.DB, from, to)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "payment method breakdown", stats.ByMethod)
}

/* ===================== internals ===================== */

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	var from, to *time.Time
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			t = t.AddDate(0, 0, 1)
			to = &t
		}
	}
	return from, to
}
