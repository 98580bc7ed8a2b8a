// file: internals/features/billing/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceCtrl "klinikku_backend/internals/features/billing/invoices/controller"
)

// InvoiceUserRoutes mounts the read-only surface (any logged-in user).
func InvoiceUserRoutes(r fiber.Router, db *gorm.DB) {
	h := &invoiceCtrl.InvoiceHandler{DB: db}
	p := &invoiceCtrl.PaymentHandler{DB: db}

	g := r.Group("/invoices")
	g.Get("/", h.List)
	g.Get("/stats", h.Stats)
	g.Get("/patient/:patient_id", h.ListByPatient)
	g.Get("/visit/:visit_id", h.GetByVisit)
	g.Get("/:id", h.GetByID)
	g.Get("/:id/payments", p.ListPayments)
}

// InvoiceAdminRoutes mounts the mutating surface (staff and admin).
func InvoiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &invoiceCtrl.InvoiceHandler{DB: db}
	p := &invoiceCtrl.PaymentHandler{DB: db}

	g := r.Group("/invoices")
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Patch("/:id/discount", h.ApplyDiscount)
	g.Post("/:id/payments", p.AddPayment)
	g.Post("/:id/refund", p.Refund)
	g.Delete("/:id", h.Cancel)
}
