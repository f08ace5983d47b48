package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupDoctorRoutes configures all doctor profile related routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/api/v1/doctors")

	// Browsing doctors is open
	doctor.Get("/", controllers.GetAllDoctors)
	doctor.Get("/:id", controllers.GetDoctor)

	doctor.Patch("/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor), controllers.UpdateDoctor)
	doctor.Delete("/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.DeleteDoctor)
	doctor.Delete("/soft/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.SoftDeleteDoctor)
}
