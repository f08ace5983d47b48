package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupDoctorScheduleRoutes configures all doctor schedule related routes
func SetupDoctorScheduleRoutes(app *fiber.App) {
	doctorSchedule := app.Group("/api/v1/doctor-schedules")

	doctorSchedule.Post("/", middleware.Protected(models.RoleDoctor), controllers.CreateDoctorSchedules)
	doctorSchedule.Get("/", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.GetAllDoctorSchedules)
	doctorSchedule.Get("/my-schedules", middleware.Protected(models.RoleDoctor), controllers.GetMySchedules)
	doctorSchedule.Delete("/:id", middleware.Protected(models.RoleDoctor), controllers.DeleteDoctorSchedule)
}
