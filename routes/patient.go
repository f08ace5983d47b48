package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupPatientRoutes configures all patient profile related routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/api/v1/patients", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin))

	patient.Get("/", controllers.GetAllPatients)
	patient.Get("/:id", controllers.GetPatient)
	patient.Patch("/:id", controllers.UpdatePatient)
	patient.Delete("/:id", controllers.DeletePatient)
	patient.Delete("/soft/:id", controllers.SoftDeletePatient)
}
