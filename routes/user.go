package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupUserRoutes configures all user management related routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/users")

	user.Post("/create-admin", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.CreateAdmin)
	user.Post("/create-doctor", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.CreateDoctor)
	// Patients register themselves
	user.Post("/create-patient", controllers.CreatePatient)

	user.Get("/", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.GetAllUsers)
	user.Patch("/:id/status", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.ChangeProfileStatus)

	user.Get("/me", middleware.Protected(), controllers.GetMyProfile)
	user.Patch("/update-my-profile", middleware.Protected(), controllers.UpdateMyProfile)
}
