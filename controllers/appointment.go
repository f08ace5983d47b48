package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var appointmentFilterableFields = builder.FieldMap{
	"status":        "status",
	"paymentStatus": "payment_status",
	"doctorId":      "doctor_id",
	"patientId":     "patient_id",
}

var appointmentSortableFields = builder.FieldMap{
	"status":        "status",
	"paymentStatus": "payment_status",
	"createdAt":     "created_at",
}

// CreateAppointment books a slot for the calling patient. The appointment
// row and the isBooked flip on the doctor-schedule share one transaction.
func CreateAppointment(c *fiber.Ctx) error {
	type payload struct {
		DoctorID   string `json:"doctorId"`
		ScheduleID string `json:"scheduleId"`
	}

	body := new(payload)
	if err := c.BodyParser(body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var patient models.Patient
	if err := db.DB.Where("email = ? AND is_deleted = ?", middleware.AuthEmail(c), false).
		First(&patient).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Patient not found")
	}

	var doctor models.Doctor
	if err := db.DB.Where("id = ? AND is_deleted = ?", body.DoctorID, false).
		First(&doctor).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}

	var assignment models.DoctorSchedules
	err := db.DB.Where("doctor_id = ? AND schedule_id = ? AND is_booked = ?", doctor.ID, body.ScheduleID, false).
		First(&assignment).Error
	if err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "The schedule is not available!")
	}

	appointment := models.Appointment{
		PatientID:      patient.ID,
		DoctorID:       doctor.ID,
		ScheduleID:     body.ScheduleID,
		VideoCallingID: uuid.NewString(),
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		return tx.Model(&models.DoctorSchedules{}).
			Where("doctor_id = ? AND schedule_id = ?", doctor.ID, body.ScheduleID).
			Updates(map[string]interface{}{
				"is_booked":      true,
				"appointment_id": appointment.ID,
			}).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to book appointment")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Appointment booked successfully!", nil, appointment)
}

// GetMyAppointments lists the caller's appointments, scoped by role.
func GetMyAppointments(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"status", "paymentStatus"})

	qb := builder.New(db.DB.Model(&models.Appointment{})).
		Filter(filters, appointmentFilterableFields)

	email := middleware.AuthEmail(c)
	switch middleware.AuthRole(c) {
	case models.RoleDoctor:
		qb.Where("doctor_id IN (?)", db.DB.Model(&models.Doctor{}).Select("id").Where("email = ?", email))
	default:
		qb.Where("patient_id IN (?)", db.DB.Model(&models.Patient{}).Select("id").Where("email = ?", email))
	}

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count appointments")
	}

	var appointments []models.Appointment
	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), appointmentSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("Doctor").Preload("Patient").Preload("Schedule").
		Find(&appointments)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch appointments")
	}

	return utils.SendResponse(c, fiber.StatusOK, "My appointments retrieved successfully!", qb.Meta(total), appointments)
}

// GetAllAppointments lists every appointment with filters and pagination.
func GetAllAppointments(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"status", "paymentStatus", "doctorId", "patientId"})

	qb := builder.New(db.DB.Model(&models.Appointment{})).
		Filter(filters, appointmentFilterableFields)

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count appointments")
	}

	var appointments []models.Appointment
	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), appointmentSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("Doctor").Preload("Patient").Preload("Schedule").
		Find(&appointments)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch appointments")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Appointments retrieved successfully!", qb.Meta(total), appointments)
}

// ChangeAppointmentStatus moves an appointment along its status machine.
// A doctor may only change their own appointments.
func ChangeAppointmentStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Doctor").First(&appointment, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Appointment not found")
	}

	if middleware.AuthRole(c) == models.RoleDoctor {
		if appointment.Doctor == nil || appointment.Doctor.Email != middleware.AuthEmail(c) {
			return utils.NewApiError(fiber.StatusBadRequest, "This is not your appointment!")
		}
	}

	if err := appointment.CanTransitionTo(input.Status); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	if err := db.DB.Model(&appointment).Update("status", input.Status).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to change appointment status")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Appointment status changed successfully!", nil, appointment)
}
