// file: internals/features/clinical/visits/route/visit_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	visitCtrl "klinikku_backend/internals/features/clinical/visits/controller"
)

func VisitUserRoutes(r fiber.Router, db *gorm.DB) {
	h := &visitCtrl.VisitHandler{DB: db}

	g := r.Group("/visits")
	g.Get("/patient/:patient_id", h.ListByPatient)
	g.Get("/:id", h.GetByID)
}

func VisitAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &visitCtrl.VisitHandler{DB: db}

	g := r.Group("/visits")
	g.Post("/", h.Create)
}
