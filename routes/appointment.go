package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/api/v1/appointments")

	appointment.Post("/", middleware.Protected(models.RolePatient), controllers.CreateAppointment)
	appointment.Get("/my-appointments", middleware.Protected(models.RolePatient, models.RoleDoctor), controllers.GetMyAppointments)
	appointment.Get("/", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.GetAllAppointments)
	appointment.Patch("/:id/status", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor), controllers.ChangeAppointmentStatus)
}
