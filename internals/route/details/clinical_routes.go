// file: internals/route/details/clinical_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	PatientRoute "klinikku_backend/internals/features/clinical/patients/route"
	VisitRoute "klinikku_backend/internals/features/clinical/visits/route"
)

func ClinicalUserRoutes(r fiber.Router, db *gorm.DB) {
	PatientRoute.PatientUserRoutes(r, db)
	VisitRoute.VisitUserRoutes(r, db)
}

func ClinicalAdminRoutes(r fiber.Router, db *gorm.DB) {
	PatientRoute.PatientAdminRoutes(r, db)
	VisitRoute.VisitAdminRoutes(r, db)
}
