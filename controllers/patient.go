package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var patientSearchableColumns = []string{"name", "email"}

var patientFilterableFields = builder.FieldMap{
	"name":          "name",
	"email":         "email",
	"contactNumber": "contact_number",
}

var patientSortableFields = builder.FieldMap{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// GetAllPatients lists non-deleted patients with health data and reports.
func GetAllPatients(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"name", "email", "contactNumber"})

	var patients []models.Patient
	qb := builder.New(db.DB.Model(&models.Patient{})).
		Search(c.Query("searchTerm"), patientSearchableColumns).
		Filter(filters, patientFilterableFields).
		ExcludeDeleted()

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count patients")
	}

	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), patientSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("PatientHealthData").Preload("MedicalReports").
		Find(&patients)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch patients")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Patients retrieved successfully!", qb.Meta(total), patients)
}

// GetPatient returns a single non-deleted patient by id.
func GetPatient(c *fiber.Ctx) error {
	var patient models.Patient
	err := db.DB.Preload("PatientHealthData").Preload("MedicalReports").
		Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&patient).Error
	if err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Patient not found")
	}
	return utils.SendResponse(c, fiber.StatusOK, "Patient retrieved successfully!", nil, patient)
}

// UpdatePatient applies a partial update; health data is upserted and a
// medical report, when present, appended — all inside one transaction.
func UpdatePatient(c *fiber.Ctx) error {
	type payload struct {
		models.Patient
		PatientHealthData *models.PatientHealthData `json:"patientHealthData"`
		MedicalReport     *models.MedicalReport     `json:"medicalReport"`
	}

	var patient models.Patient
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&patient).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Patient not found")
	}

	body := new(payload)
	if err := c.BodyParser(body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	body.Patient.ID, body.Patient.Email = "", ""

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&patient).Updates(body.Patient).Error; err != nil {
			return err
		}

		if body.PatientHealthData != nil {
			var existing models.PatientHealthData
			err := tx.Where("patient_id = ?", patient.ID).First(&existing).Error
			switch err {
			case nil:
				body.PatientHealthData.ID = existing.ID
				body.PatientHealthData.PatientID = patient.ID
				if err := tx.Model(&existing).Updates(body.PatientHealthData).Error; err != nil {
					return err
				}
			case gorm.ErrRecordNotFound:
				body.PatientHealthData.PatientID = patient.ID
				if err := tx.Create(body.PatientHealthData).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		if body.MedicalReport != nil {
			body.MedicalReport.PatientID = patient.ID
			if err := tx.Create(body.MedicalReport).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to update patient")
	}

	var updated models.Patient
	if err := db.DB.Preload("PatientHealthData").Preload("MedicalReports").
		First(&updated, "id = ?", patient.ID).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch updated patient")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Patient updated successfully!", nil, updated)
}

// DeletePatient hard-deletes the patient's dependents first (medical
// reports, health data), then the profile, then the user, in one
// transaction so the first failure aborts the whole operation.
func DeletePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := db.DB.First(&patient, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Patient not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patient.ID).
			Delete(&models.MedicalReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patient.ID).
			Delete(&models.PatientHealthData{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&patient).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", patient.Email).Delete(&models.User{}).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete patient")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Patient deleted successfully!", nil, patient)
}

// SoftDeletePatient flips the profile flag and the user status together.
func SoftDeletePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := db.DB.Where("id = ? AND is_deleted = ?", c.Params("id"), false).
		First(&patient).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Patient not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&patient).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("email = ?", patient.Email).
			Update("status", models.StatusDeleted).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete patient")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Patient deleted successfully!", nil, patient)
}
