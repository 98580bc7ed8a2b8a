// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "klinikku_backend/internals/middlewares/auth"
	routeDetails "klinikku_backend/internals/route/details"

	userModel "klinikku_backend/internals/features/users/user/model"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	// any authenticated account: read-only billing + clinical surface
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)
	routeDetails.AuthUserRoutes(private, db)
	routeDetails.BillingUserRoutes(private, db)
	routeDetails.ClinicalUserRoutes(private, db)

	// ===================== ADMIN / STAFF =====================
	// mutations: billing desk staff and admins only
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("staff access required", userModel.RoleAdmin, userModel.RoleStaff),
	)
	routeDetails.BillingAdminRoutes(admin, db)
	routeDetails.ClinicalAdminRoutes(admin, db)

	// account management stays admin-only
	adminOnly := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("admin access required", userModel.RoleAdmin),
	)
	routeDetails.AuthAdminRoutes(adminOnly, db)
}
