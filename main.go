package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/phealthcare/healthcare-api/config"
	"github.com/phealthcare/healthcare-api/cron"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/redis"
	"github.com/phealthcare/healthcare-api/routes"
	"github.com/phealthcare/healthcare-api/utils"
)

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Healthcare server is running!",
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupSpecialityRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupDoctorScheduleRoutes(app)
	routes.SetupAppointmentRoutes(app)

	app.Use(utils.NotFoundHandler)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":" + cfg.Port))
}
