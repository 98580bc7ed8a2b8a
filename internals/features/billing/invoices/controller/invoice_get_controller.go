// file: internals/features/billing/invoices/controller/invoice_get_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "klinikku_backend/internals/features/billing/invoices/dto"
	model "klinikku_backend/internals/features/billing/invoices/model"
	reportsvc "klinikku_backend/internals/features/billing/reports/service"
	helper "klinikku_backend/internals/helpers"
)

/* =========================
   List (GET /invoices)
========================= */

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	// Sorting whitelist
	allowedSort := map[string]string{
		"billed_at":  "invoice_billed_at",
		"created_at": "invoice_created_at",
		"total":      "invoice_total",
		"balance":    "invoice_balance",
		"status":     "invoice_status",
		"number":     "invoice_number",
	}
	sortBy := strings.ToLower(strings.TrimSpace(c.Query("sort_by", "billed_at")))
	col, ok := allowedSort[sortBy]
	if !ok {
		col = allowedSort["billed_at"]
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		dir = "ASC"
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Invoice{}).
		Where("invoice_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("status")); v != "" { // UNPAID|PARTIAL|PAID
		q = q.Where("invoice_status = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(c.Query("patient_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_patient_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("visit_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_visit_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("cancelled")); v != "" { // true|false
		if strings.EqualFold(v, "true") {
			q = q.Where("invoice_cancelled_at IS NOT NULL")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("invoice_cancelled_at IS NULL")
		}
	}

	// date_from/date_to on billed_at: RFC3339 & YYYY-MM-DD (date_to < next-day)
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("invoice_billed_at >= ?", t)
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("invoice_billed_at >= ?", t)
		}
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("invoice_billed_at <= ?", t)
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("invoice_billed_at < ?", t.AddDate(0, 0, 1))
		}
	}

	// Free-text search on number / notes / discount reason
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(invoice_number) LIKE ? OR LOWER(COALESCE(invoice_notes,'')) LIKE ? OR LOWER(COALESCE(invoice_discount_reason,'')) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Invoice
	if err := q.Order(col + " " + dir).Order("invoice_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "invoice list", dto.ToInvoiceResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Stats (GET /invoices/stats)
========================= */

func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	from, to := parseDateRange(c)
	stats, err := reportsvc.RevenueStats(c.UserContext(), h.DB, from, to)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "invoice stats", stats)
}

/* =========================
   Detail lookups
========================= */

func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var inv model.Invoice
	if err := h.DB.WithContext(c.UserContext()).
		Where("invoice_id = ? AND invoice_deleted_at IS NULL", id).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "invoice detail", dto.ToInvoiceResponse(inv))
}

// GET /invoices/patient/:patient_id
func (h *InvoiceHandler) ListByPatient(c *fiber.Ctx) error {
	pid, err := parseUUIDParam(c, "patient_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid patient_id")
	}
	var list []model.Invoice
	if err := h.DB.WithContext(c.UserContext()).
		Where("invoice_patient_id = ? AND invoice_deleted_at IS NULL", pid).
		Order("invoice_billed_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "patient invoices", dto.ToInvoiceResponses(list))
}

// GET /invoices/visit/:visit_id
func (h *InvoiceHandler) GetByVisit(c *fiber.Ctx) error {
	vid, err := parseUUIDParam(c, "visit_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid visit_id")
	}
	var inv model.Invoice
	if err := h.DB.WithContext(c.UserContext()).
		Where("invoice_visit_id = ? AND invoice_deleted_at IS NULL", vid).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no invoice for this visit")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "visit invoice", dto.ToInvoiceResponse(inv))
}

/* ===================== internals ===================== */

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time) {
	var from, to *time.Time
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			from = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			to = &t
		} else if t, err := time.Parse("2006-01-02", v); err == nil {
			t = t.AddDate(0, 0, 1)
			to = &t
		}
	}
	return from, to
}
