package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var adminSearchableColumns = []string{"name", "email"}

var adminFilterableFields = builder.FieldMap{
	"name":          "name",
	"email":         "email",
	"contactNumber": "contact_number",
}

var adminSortableFields = builder.FieldMap{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// GetAllAdmins lists non-deleted admins with search, filters and pagination.
func GetAllAdmins(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"name", "email", "contactNumber"})

	var admins []models.Admin
	qb := builder.New(db.DB.Model(&models.Admin{})).
		Search(c.Query("searchTerm"), adminSearchableColumns).
		Filter(filters, adminFilterableFields).
		ExcludeDeleted()

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count admins")
	}

	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), adminSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Find(&admins)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Admins retrieved successfully!", qb.Meta(total), admins)
}

// GetAdmin returns a single non-deleted admin by id.
func GetAdmin(c *fiber.Ctx) error {
	var admin models.Admin
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&admin).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Admin not found")
	}
	return utils.SendResponse(c, fiber.StatusOK, "Admin retrieved successfully!", nil, admin)
}

// UpdateAdmin applies a partial update after the existence check.
func UpdateAdmin(c *fiber.Ctx) error {
	var admin models.Admin
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&admin).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Admin not found")
	}

	var patch models.Admin
	if err := c.BodyParser(&patch); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	patch.ID, patch.Email = "", ""

	if err := db.DB.Model(&admin).Updates(patch).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to update admin")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Admin updated successfully!", nil, admin)
}

// DeleteAdmin hard-deletes the profile and the linked user in one
// transaction. Any failure rolls both back.
func DeleteAdmin(c *fiber.Ctx) error {
	var admin models.Admin
	if err := db.DB.First(&admin, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Admin not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&admin).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", admin.Email).Delete(&models.User{}).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete admin")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Admin deleted successfully!", nil, admin)
}

// SoftDeleteAdmin flips the profile flag and the user status together.
func SoftDeleteAdmin(c *fiber.Ctx) error {
	var admin models.Admin
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&admin).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Admin not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&admin).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("email = ?", admin.Email).
			Update("status", models.StatusDeleted).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete admin")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Admin deleted successfully!", nil, admin)
}
