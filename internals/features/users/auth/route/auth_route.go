// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "klinikku_backend/internals/features/users/auth/controller"
	"klinikku_backend/internals/middlewares"
)

// AuthPublicRoutes: login only, rate-limited.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthUserRoutes: profile of the logged-in user.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)
	r.Get("/me", ctrl.Me)
}

// AuthAdminRoutes: account management, admin only.
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)
	r.Post("/users", ctrl.Register)
}
