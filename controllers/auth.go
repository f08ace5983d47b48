package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/phealthcare/healthcare-api/config"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/redis"
	"github.com/phealthcare/healthcare-api/utils"
)

// Login authenticates an active user and issues access and refresh tokens.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.NewApiError(fiber.StatusBadRequest, "Email and password are required")
	}

	var user models.User
	if db.DB.Where("email = ? AND status = ?", input.Email, models.StatusActive).
		First(&user).RowsAffected == 0 {
		return utils.NewApiError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.NewApiError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	cfg := config.Get()
	accessToken, err := utils.GenerateToken(user.Email, user.Role, cfg.JWTAccessSecret, cfg.JWTAccessExpiresIn)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to generate token")
	}
	refreshToken, err := utils.GenerateToken(user.Email, user.Role, cfg.JWTRefreshSecret, cfg.JWTRefreshExpiresIn)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to generate refresh token")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Logged in successfully!", nil, fiber.Map{
		"accessToken":        accessToken,
		"refreshToken":       refreshToken,
		"needPasswordChange": user.NeedPasswordChange,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token.
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	req := new(RefreshRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	cfg := config.Get()
	claims, err := utils.VerifyToken(req.RefreshToken, cfg.JWTRefreshSecret)
	if err != nil {
		return utils.NewApiError(fiber.StatusUnauthorized, "You are not authorized!")
	}

	email, _, err := utils.ClaimsIdentity(claims)
	if err != nil {
		return utils.NewApiError(fiber.StatusUnauthorized, "You are not authorized!")
	}

	var user models.User
	if db.DB.Where("email = ? AND status = ?", email, models.StatusActive).
		First(&user).RowsAffected == 0 {
		return utils.NewApiError(fiber.StatusUnauthorized, "You are not authorized!")
	}

	accessToken, err := utils.GenerateToken(user.Email, user.Role, cfg.JWTAccessSecret, cfg.JWTAccessExpiresIn)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Access token generated successfully!", nil, fiber.Map{
		"accessToken":        accessToken,
		"needPasswordChange": user.NeedPasswordChange,
	})
}

// ChangePassword verifies the old password before replacing it.
func ChangePassword(c *fiber.Ctx) error {
	type ChangePasswordInput struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	input := new(ChangePasswordInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if err := db.DB.Where("email = ? AND status = ?", middleware.AuthEmail(c), models.StatusActive).
		First(&user).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return utils.NewApiError(fiber.StatusUnauthorized, "Password incorrect!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.DB.Model(&user).Updates(map[string]interface{}{
		"password":             string(hashed),
		"need_password_change": false,
	}).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to change password")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Password changed successfully!", nil, nil)
}

// ForgotPassword mails a one-time reset link. The reset token is held in
// redis with a TTL so it cannot be replayed after use.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotPasswordInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var user models.User
	if err := db.DB.Where("email = ? AND status = ?", input.Email, models.StatusActive).
		First(&user).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	cfg := config.Get()
	resetToken, err := utils.GenerateToken(user.Email, user.Role, cfg.JWTResetPassSecret, cfg.JWTResetPassExpiresIn)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to generate reset token")
	}

	if err := redis.StoreResetToken(user.Email, resetToken, cfg.JWTResetPassExpiresIn); err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to store reset token")
	}

	resetLink := fmt.Sprintf("%s?userId=%s&token=%s", cfg.ResetPasswordUILink, user.ID, resetToken)
	body := fmt.Sprintf(`
		<div>
			<p>Dear User,</p>
			<p>Your password reset link
				<a href="%s">
					<button>Reset Password</button>
				</a>
			</p>
		</div>
	`, resetLink)

	if err := utils.SendEmail(user.Email, "Reset Your Password", body); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to send reset email")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Check your email for the reset link!", nil, nil)
}

// ResetPassword sets a new password for the token's owner. The token must
// verify and still be present in redis; it is consumed on use.
func ResetPassword(c *fiber.Ctx) error {
	type ResetPasswordInput struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}

	input := new(ResetPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	token := c.Get("Authorization")
	if token == "" {
		return utils.NewApiError(fiber.StatusForbidden, "Forbidden!")
	}

	var user models.User
	if err := db.DB.Where("id = ? AND status = ?", input.ID, models.StatusActive).
		First(&user).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	if _, err := utils.VerifyToken(token, config.Get().JWTResetPassSecret); err != nil {
		return utils.NewApiError(fiber.StatusForbidden, "Forbidden!")
	}

	stored, err := redis.TakeResetToken(user.Email)
	if err != nil || stored != token {
		return utils.NewApiError(fiber.StatusForbidden, "Forbidden!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.DB.Model(&user).Updates(map[string]interface{}{
		"password":             string(hashed),
		"need_password_change": false,
	}).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to reset password")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Password reset successfully!", nil, nil)
}
