// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoute "klinikku_backend/internals/features/users/auth/route"
)

func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoute.AuthPublicRoutes(r, db)
}

func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoute.AuthUserRoutes(r, db)
}

func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	AuthRoute.AuthAdminRoutes(r, db)
}
