// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	InvoiceRoute "klinikku_backend/internals/features/billing/invoices/route"
	ReportRoute "klinikku_backend/internals/features/billing/reports/route"
)

func BillingUserRoutes(r fiber.Router, db *gorm.DB) {
	InvoiceRoute.InvoiceUserRoutes(r, db)
	ReportRoute.FinancialReportRoutes(r, db)
}

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	InvoiceRoute.InvoiceAdminRoutes(r, db)
}
