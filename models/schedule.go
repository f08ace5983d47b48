package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a bookable 30-minute interval, globally unique by its bounds.
// Schedules are hard-delete-only and carry no soft-delete flag.
type Schedule struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	StartDateAndTime time.Time `json:"startDateAndTime" gorm:"uniqueIndex:idx_schedule_bounds;not null"`
	EndDateAndTime   time.Time `json:"endDateAndTime" gorm:"uniqueIndex:idx_schedule_bounds;not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DoctorSchedules associates a doctor with a schedule slot. IsBooked gates
// deletion and rebooking.
type DoctorSchedules struct {
	DoctorID      string    `json:"doctorId" gorm:"primaryKey"`
	ScheduleID    string    `json:"scheduleId" gorm:"primaryKey"`
	IsBooked      bool      `json:"isBooked" gorm:"default:false"`
	AppointmentID *string   `json:"appointmentId"`
	Doctor        *Doctor   `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Schedule      *Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
}

func (DoctorSchedules) TableName() string {
	return "doctor_schedules"
}
