package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

const scheduleInterval = 30 * time.Minute

var scheduleSortableFields = builder.FieldMap{
	"startDateAndTime": "start_date_and_time",
	"endDateAndTime":   "end_date_and_time",
	"createdAt":        "created_at",
}

// CreateSchedules expands the requested date span and daily window into
// 30-minute slots and persists the ones that do not exist yet. Re-running
// with overlapping ranges only fills gaps; the response carries newly
// created slots only.
func CreateSchedules(c *fiber.Ctx) error {
	type payload struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}

	body := new(payload)
	if err := c.BodyParser(body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	ranges, err := utils.BuildSlotRanges(body.StartDate, body.EndDate, body.StartTime, body.EndTime, scheduleInterval)
	if err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, err.Error())
	}

	schedules := []models.Schedule{}
	for _, r := range ranges {
		var existing models.Schedule
		result := db.DB.Where("start_date_and_time = ? AND end_date_and_time = ?", r.Start, r.End).
			First(&existing)
		if result.RowsAffected > 0 {
			continue
		}

		schedule := models.Schedule{
			StartDateAndTime: r.Start,
			EndDateAndTime:   r.End,
		}
		if err := db.DB.Create(&schedule).Error; err != nil {
			return utils.NewApiError(fiber.StatusInternalServerError, "Failed to create schedule")
		}
		schedules = append(schedules, schedule)
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Schedules created successfully!", nil, schedules)
}

// GetAllSchedules lists slots still available to the calling doctor:
// slots the doctor already claimed are excluded.
func GetAllSchedules(c *fiber.Ctx) error {
	var claimedIDs []string
	err := db.DB.Model(&models.DoctorSchedules{}).
		Joins("JOIN doctors ON doctors.id = doctor_schedules.doctor_id").
		Where("doctors.email = ?", middleware.AuthEmail(c)).
		Pluck("doctor_schedules.schedule_id", &claimedIDs).Error
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch doctor schedules")
	}

	qb := builder.New(db.DB.Model(&models.Schedule{}))

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		qb.Where("start_date_and_time >= ?", startDate).
			Where("end_date_and_time <= ?", endDate)
	}
	if len(claimedIDs) > 0 {
		qb.Where("id NOT IN ?", claimedIDs)
	}

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []models.Schedule
	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), scheduleSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Find(&schedules)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Schedules retrieved successfully!", qb.Meta(total), schedules)
}

// GetSchedule returns a single slot by id.
func GetSchedule(c *fiber.Ctx) error {
	var schedule models.Schedule
	if err := db.DB.First(&schedule, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Schedule not found")
	}
	return utils.SendResponse(c, fiber.StatusOK, "Schedule retrieved successfully!", nil, schedule)
}

// DeleteSchedule removes a slot unless any doctor assignment has booked it.
func DeleteSchedule(c *fiber.Ctx) error {
	var schedule models.Schedule
	if err := db.DB.First(&schedule, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Schedule not found")
	}

	var booked int64
	db.DB.Model(&models.DoctorSchedules{}).
		Where("schedule_id = ? AND is_booked = ?", schedule.ID, true).
		Count(&booked)
	if booked > 0 {
		return utils.NewApiError(fiber.StatusBadRequest, "You can not delete the schedule because of the schedule is already booked!")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", schedule.ID).
			Delete(&models.DoctorSchedules{}).Error; err != nil {
			return err
		}
		return tx.Delete(&schedule).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to delete schedule")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Schedule deleted successfully!", nil, schedule)
}
