package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/controllers"
	"github.com/phealthcare/healthcare-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh-token", controllers.RefreshToken)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password", controllers.ResetPassword)

	// Protected routes
	auth.Post("/change-password", middleware.Protected(), controllers.ChangePassword)
}
