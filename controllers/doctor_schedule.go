package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var doctorScheduleFilterableFields = builder.FieldMap{
	"doctorId":   "doctor_schedules.doctor_id",
	"scheduleId": "doctor_schedules.schedule_id",
}

var doctorScheduleSortableFields = builder.FieldMap{
	"isBooked": "is_booked",
}

func currentDoctor(c *fiber.Ctx) (*models.Doctor, error) {
	var doctor models.Doctor
	err := db.DB.Where("email = ? AND is_deleted = ?", middleware.AuthEmail(c), false).
		First(&doctor).Error
	if err != nil {
		return nil, utils.NewApiError(fiber.StatusNotFound, "Doctor not found")
	}
	return &doctor, nil
}

// CreateDoctorSchedules bulk-assigns schedule slots to the calling doctor.
// A duplicate pair trips the composite primary key and surfaces as 409.
func CreateDoctorSchedules(c *fiber.Ctx) error {
	type payload struct {
		ScheduleIDs []string `json:"scheduleIds"`
	}

	body := new(payload)
	if err := c.BodyParser(body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if len(body.ScheduleIDs) == 0 {
		return utils.NewApiError(fiber.StatusBadRequest, "scheduleIds is required")
	}

	doctor, err := currentDoctor(c)
	if err != nil {
		return err
	}

	assignments := make([]models.DoctorSchedules, 0, len(body.ScheduleIDs))
	for _, scheduleID := range body.ScheduleIDs {
		assignments = append(assignments, models.DoctorSchedules{
			DoctorID:   doctor.ID,
			ScheduleID: scheduleID,
		})
	}

	if err := db.DB.Create(&assignments).Error; err != nil {
		return utils.NewApiError(fiber.StatusConflict, "Schedule already assigned to this doctor")
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Doctor schedules created successfully!", nil, assignments)
}

// GetAllDoctorSchedules lists every doctor-schedule assignment; searchTerm
// matches the doctor's name.
func GetAllDoctorSchedules(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"doctorId", "scheduleId"})

	qb := builder.New(db.DB.Model(&models.DoctorSchedules{})).
		Filter(filters, doctorScheduleFilterableFields)

	applyBookedFilter(qb, c.Query("isBooked"))

	if term := c.Query("searchTerm"); term != "" {
		qb.Where(
			"doctor_schedules.doctor_id IN (?)",
			db.DB.Model(&models.Doctor{}).Select("id").Where("name ILIKE ?", "%"+term+"%"),
		)
	}

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count doctor schedules")
	}

	var assignments []models.DoctorSchedules
	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), doctorScheduleSortableFields, "doctor_id").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("Doctor").Preload("Schedule").
		Find(&assignments)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch doctor schedules")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctor schedules retrieved successfully!", qb.Meta(total), assignments)
}

// GetMySchedules lists the calling doctor's own assignments with date-range
// and booked-status filtering.
func GetMySchedules(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return err
	}

	qb := builder.New(db.DB.Model(&models.DoctorSchedules{})).
		Where("doctor_schedules.doctor_id = ?", doctor.ID)

	applyBookedFilter(qb, c.Query("isBooked"))

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		qb.Where(
			"doctor_schedules.schedule_id IN (?)",
			db.DB.Model(&models.Schedule{}).Select("id").
				Where("start_date_and_time >= ? AND end_date_and_time <= ?", startDate, endDate),
		)
	}

	total, err2 := qb.Count()
	if err2 != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count doctor schedules")
	}

	var assignments []models.DoctorSchedules
	err2 = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), doctorScheduleSortableFields, "schedule_id").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("Schedule").
		Find(&assignments)
	if err2 != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch doctor schedules")
	}

	return utils.SendResponse(c, fiber.StatusOK, "My schedules retrieved successfully!", qb.Meta(total), assignments)
}

// DeleteDoctorSchedule removes one of the calling doctor's assignments.
// A booked slot is never deleted; the attempt fails with the business-rule
// error and the row stays untouched.
func DeleteDoctorSchedule(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return err
	}

	scheduleID := c.Params("id")

	var assignment models.DoctorSchedules
	if err := db.DB.Where("doctor_id = ? AND schedule_id = ?", doctor.ID, scheduleID).
		First(&assignment).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Doctor schedule not found")
	}

	if assignment.IsBooked {
		return utils.NewApiError(fiber.StatusBadRequest, "You can not delete the schedule because of the schedule is already booked!")
	}

	err = db.DB.Where("doctor_id = ? AND schedule_id = ?", doctor.ID, scheduleID).
		Delete(&models.DoctorSchedules{}).Error
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete doctor schedule")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Doctor schedule deleted successfully!", nil, assignment)
}

// applyBookedFilter coerces the query-string boolean before it reaches the
// boolean column; anything but "true"/"false" is ignored.
func applyBookedFilter(qb *builder.QueryBuilder, raw string) {
	switch raw {
	case "true":
		qb.Where("doctor_schedules.is_booked = ?", true)
	case "false":
		qb.Where("doctor_schedules.is_booked = ?", false)
	}
}
