package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupSpecialityRoutes configures all speciality related routes
func SetupSpecialityRoutes(app *fiber.App) {
	speciality := app.Group("/api/v1/specialities")

	speciality.Post("/", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.CreateSpeciality)
	speciality.Get("/", controllers.GetAllSpecialities)
	speciality.Delete("/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.DeleteSpeciality)
}
