package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var doctorSearchableColumns = []string{"name", "email", "designation", "qualification"}

var doctorFilterableFields = builder.FieldMap{
	"name":          "name",
	"email":         "email",
	"contactNumber": "contact_number",
	"gender":        "gender",
	"designation":   "designation",
}

var doctorSortableFields = builder.FieldMap{
	"name":           "name",
	"email":          "email",
	"experience":     "experience",
	"appointmentFee": "appointment_fee",
	"averageRating":  "average_rating",
	"createdAt":      "created_at",
}

// SpecialityChange marks one doctor-speciality link for creation or removal.
type SpecialityChange struct {
	SpecialitiesID string `json:"specialitiesId"`
	IsDeleted      bool   `json:"isDeleted"`
}

// GetAllDoctors lists non-deleted doctors; supports a speciality-title
// filter through the join table.
func GetAllDoctors(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"name", "email", "contactNumber", "gender", "designation"})

	var doctors []models.Doctor
	qb := builder.New(db.DB.Model(&models.Doctor{})).
		Search(c.Query("searchTerm"), doctorSearchableColumns).
		Filter(filters, doctorFilterableFields).
		ExcludeDeleted()

	if speciality := c.Query("specialities"); speciality != "" {
		qb.Where(
			"id IN (?)",
			db.DB.Model(&models.DoctorSpecialities{}).
				Select("doctor_specialities.doctor_id").
				Joins("JOIN specialities ON specialities.id = doctor_specialities.specialities_id").
				Where("specialities.title ILIKE ?", "%"+speciality+"%"),
		)
	}

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count doctors")
	}

	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), doctorSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("DoctorSpecialities.Specialities").
		Find(&doctors)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch doctors")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctors retrieved successfully!", qb.Meta(total), doctors)
}

// GetDoctor returns a single non-deleted doctor with specialities.
func GetDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	err := db.DB.Preload("DoctorSpecialities.Specialities").
		Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&doctor).Error
	if err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}
	return utils.SendResponse(c, fiber.StatusOK, "Doctor retrieved successfully!", nil, doctor)
}

// UpdateDoctor applies a partial update and reconciles the speciality
// links: entries marked isDeleted are unlinked, the rest are linked. The
// profile update and the link changes share one transaction.
func UpdateDoctor(c *fiber.Ctx) error {
	type payload struct {
		models.Doctor
		Specialities []SpecialityChange `json:"specialities"`
	}

	var doctor models.Doctor
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&doctor).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}

	body := new(payload)
	if err := c.BodyParser(body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	body.Doctor.ID, body.Doctor.Email = "", ""

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&doctor).Updates(body.Doctor).Error; err != nil {
			return err
		}

		for _, speciality := range body.Specialities {
			if speciality.IsDeleted {
				err := tx.Where("doctor_id = ? AND specialities_id = ?", doctor.ID, speciality.SpecialitiesID).
					Delete(&models.DoctorSpecialities{}).Error
				if err != nil {
					return err
				}
				continue
			}
			link := models.DoctorSpecialities{
				DoctorID:       doctor.ID,
				SpecialitiesID: speciality.SpecialitiesID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to update doctor")
	}

	var updated models.Doctor
	if err := db.DB.Preload("DoctorSpecialities.Specialities").
		First(&updated, "id = ?", doctor.ID).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch updated doctor")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctor updated successfully!", nil, updated)
}

// DeleteDoctor hard-deletes speciality links, the profile and the user in
// one transaction.
func DeleteDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctor.ID).
			Delete(&models.DoctorSpecialities{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", doctor.Email).Delete(&models.User{}).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete doctor")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctor deleted successfully!", nil, doctor)
}

// SoftDeleteDoctor flips the profile flag and the user status together.
func SoftDeleteDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&doctor).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&doctor).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("email = ?", doctor.Email).
			Update("status", models.StatusDeleted).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete doctor")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctor deleted successfully!", nil, doctor)
}
