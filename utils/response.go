package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Meta carries pagination info for list responses.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Response is the uniform success envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Meta    *Meta       `json:"meta,omitempty"`
	Data    interface{} `json:"data"`
}

// SendResponse writes the standard success envelope.
func SendResponse(c *fiber.Ctx, statusCode int, message string, meta *Meta, data interface{}) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Meta:    meta,
		Data:    data,
	})
}

// ErrorHandler is the single boundary handler: every error escaping a
// handler is normalized to the error envelope here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong!"

	var apiErr *ApiError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &apiErr):
		code = apiErr.StatusCode
		message = apiErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = fiber.StatusNotFound
		message = "Record not found"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// NotFoundHandler answers any unmatched route with a fixed envelope.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "API NOT FOUND!",
		"error": fiber.Map{
			"path":    c.OriginalURL(),
			"message": "Your requested path is not found!",
		},
	})
}
