// file: internals/features/billing/invoices/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "klinikku_backend/internals/features/billing/invoices/dto"
	model "klinikku_backend/internals/features/billing/invoices/model"
	svc "klinikku_backend/internals/features/billing/invoices/service"
	helper "klinikku_backend/internals/helpers"
)

type PaymentHandler struct {
	DB *gorm.DB
}

/* =========================
   Record payment (POST /invoices/:id/payments)
========================= */

func (h *PaymentHandler) AddPayment(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	inv, err := svc.AddPayment(c.UserContext(), h.DB, id, in.ToPaymentInput(actor))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "payment recorded", dto.ToInvoiceResponse(*inv))
}

/* =========================
   Ledger read (GET /invoices/:id/payments)
========================= */

func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
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

	return helper.JsonOK(c, "payment ledger", fiber.Map{
		"invoice_id":          inv.InvoiceID,
		"invoice_number":      inv.InvoiceNumber,
		"invoice_total":       inv.InvoiceTotal,
		"invoice_amount_paid": inv.InvoiceAmountPaid,
		"invoice_balance":     inv.InvoiceBalance,
		"invoice_status":      inv.InvoiceStatus,
		"payments":            inv.InvoicePayments,
	})
}

/* =========================
   Refund (POST /invoices/:id/refund)
========================= */

func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RefundCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inv, err := svc.ProcessRefund(c.UserContext(), h.DB, id, in.ToRefundInput(actor))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "refund processed", dto.ToInvoiceResponse(*inv))
}
