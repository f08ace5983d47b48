package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupAdminRoutes configures all admin profile related routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admins", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin))

	admin.Get("/", controllers.GetAllAdmins)
	admin.Get("/:id", controllers.GetAdmin)
	admin.Patch("/:id", controllers.UpdateAdmin)
	admin.Delete("/:id", controllers.DeleteAdmin)
	admin.Delete("/soft/:id", controllers.SoftDeleteAdmin)
}
