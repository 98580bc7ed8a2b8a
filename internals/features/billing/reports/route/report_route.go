// file: internals/features/billing/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "klinikku_backend/internals/features/billing/reports/controller"
)

// FinancialReportRoutes mounts the report endpoints. Order matters:
// the named reports must be registered before the :granularity catch-all.
func FinancialReportRoutes(r fiber.Router, db *gorm.DB) {
	h := &reportCtrl.FinancialReportHandler{DB: db}

	g := r.Group("/reports/financial")
	g.Get("/aging", h.Aging)
	g.Get("/payment-methods", h.PaymentMethods)
	g.Get("/:granularity", h.RevenueSeries)
}
