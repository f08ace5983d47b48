package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
)

// SetupScheduleRoutes configures all schedule slot related routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/api/v1/schedules")

	schedule.Post("/", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor), controllers.CreateSchedules)
	schedule.Get("/", middleware.Protected(models.RoleDoctor), controllers.GetAllSchedules)
	schedule.Get("/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor), controllers.GetSchedule)
	schedule.Delete("/:id", middleware.Protected(models.RoleSuperAdmin, models.RoleAdmin), controllers.DeleteSchedule)
}
