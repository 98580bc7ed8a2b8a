// file: internals/features/billing/invoices/controller/invoice_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "klinikku_backend/internals/features/billing/invoices/dto"
	svc "klinikku_backend/internals/features/billing/invoices/service"
	helper "klinikku_backend/internals/helpers"
)

var validate = validator.New()

type InvoiceHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

/* =========================
   Create (POST /invoices)
========================= */

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.InvoiceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inv, err := svc.CreateInvoice(c.UserContext(), h.DB, in.ToCreateInput(actor))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "invoice created", dto.ToInvoiceResponse(*inv))
}

/* =========================
   Update (PUT /invoices/:id) - rejected once PAID
========================= */

func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InvoiceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inv, err := svc.UpdateInvoice(c.UserContext(), h.DB, id, in.ToUpdateInput())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "invoice updated", dto.ToInvoiceResponse(*inv))
}

/* =========================
   Discount (PATCH /invoices/:id/discount) - rejected once PAID
========================= */

func (h *InvoiceHandler) ApplyDiscount(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InvoiceDiscountDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.InvoiceDiscount == nil && in.InvoiceDiscountPercentage == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "either invoice_discount or invoice_discount_percentage is required")
	}

	inv, err := svc.ApplyDiscount(c.UserContext(), h.DB, id, in.ToDiscountInput())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "discount applied", dto.ToInvoiceResponse(*inv))
}

/* =========================
   Soft cancel (DELETE /invoices/:id) - rejected once PAID
========================= */

func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InvoiceCancelDTO
	_ = c.BodyParser(&in) // body optional

	note := ""
	if in.Note != nil {
		note = *in.Note
	}
	inv, err := svc.CancelInvoice(c.UserContext(), h.DB, id, note, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "invoice cancelled", dto.ToInvoiceResponse(*inv))
}
