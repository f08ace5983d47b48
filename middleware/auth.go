package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/phealthcare/healthcare-api/config"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

// Protected validates the bearer token and, when roles are given, enforces
// the per-route allow-list. The verified email and role land in locals.
func Protected(roles ...models.UserRole) fiber.Handler {
	secret := config.Get().JWTAccessSecret

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			token, ok := userToken.(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			email, role, err := utils.ClaimsIdentity(claims)
			if err != nil {
				return unauthorized(c, err.Error())
			}

			if len(roles) > 0 && !roleAllowed(role, roles) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"success": false,
					"message": "Forbidden!",
					"error":   "You have no permission to access this route!",
				})
			}

			c.Locals("email", email)
			c.Locals("role", role)

			return c.Next()
		},
	})
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// AuthEmail returns the verified email set by Protected.
func AuthEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

// AuthRole returns the verified role set by Protected.
func AuthRole(c *fiber.Ctx) models.UserRole {
	role, _ := c.Locals("role").(models.UserRole)
	return role
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "You are not authorized!",
		"error":   detail,
	})
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return unauthorized(c, "Invalid or expired token")
}
