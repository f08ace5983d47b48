package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

// CreateSpeciality stores a speciality with an optional uploaded icon.
func CreateSpeciality(c *fiber.Ctx) error {
	var speciality models.Speciality
	if err := json.Unmarshal([]byte(c.FormValue("data")), &speciality); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}
	if speciality.Title == "" {
		return utils.NewApiError(fiber.StatusBadRequest, "Title is required")
	}

	iconURL, err := uploadProfilePhoto(c, "specialities")
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to upload icon")
	}
	if iconURL != "" {
		speciality.Icon = iconURL
	}

	if err := db.DB.Create(&speciality).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to create speciality")
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Speciality created successfully!", nil, speciality)
}

// GetAllSpecialities returns every speciality.
func GetAllSpecialities(c *fiber.Ctx) error {
	var specialities []models.Speciality
	if err := db.DB.Find(&specialities).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch specialities")
	}
	return utils.SendResponse(c, fiber.StatusOK, "Specialities retrieved successfully!", nil, specialities)
}

// DeleteSpeciality removes a speciality and its doctor links.
func DeleteSpeciality(c *fiber.Ctx) error {
	var speciality models.Speciality
	if err := db.DB.First(&speciality, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Speciality not found")
	}

	if err := db.DB.Where("specialities_id = ?", speciality.ID).
		Delete(&models.DoctorSpecialities{}).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete speciality")
	}
	if err := db.DB.Delete(&speciality).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete speciality")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Speciality deleted successfully!", nil, speciality)
}
