// file: internals/features/clinical/patients/route/patient_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	patientCtrl "klinikku_backend/internals/features/clinical/patients/controller"
)

func PatientUserRoutes(r fiber.Router, db *gorm.DB) {
	h := &patientCtrl.PatientHandler{DB: db}

	g := r.Group("/patients")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
}

func PatientAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &patientCtrl.PatientHandler{DB: db}

	g := r.Group("/patients")
	g.Post("/", h.Create)
}
