package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentInProgress AppointmentStatus = "INPROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCanceled   AppointmentStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentUnpaid PaymentStatus = "UNPAID"
)

// Appointment links a patient, a doctor and a doctor-schedule slot.
type Appointment struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	PatientID      string            `json:"patientId" gorm:"not null"`
	DoctorID       string            `json:"doctorId" gorm:"not null"`
	ScheduleID     string            `json:"scheduleId" gorm:"not null"`
	VideoCallingID string            `json:"videoCallingId"`
	Status         AppointmentStatus `json:"status" gorm:"default:SCHEDULED"`
	PaymentStatus  PaymentStatus     `json:"paymentStatus" gorm:"default:UNPAID"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`

	Patient  *Patient  `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Doctor   *Doctor   `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Schedule *Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AppointmentScheduled
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentUnpaid
	}
	return nil
}

// CanTransitionTo reports whether moving to newStatus is a legal step.
// Completed and canceled appointments are terminal.
func (a *Appointment) CanTransitionTo(newStatus AppointmentStatus) error {
	switch a.Status {
	case AppointmentScheduled:
		if newStatus != AppointmentInProgress && newStatus != AppointmentCanceled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case AppointmentInProgress:
		if newStatus != AppointmentCompleted && newStatus != AppointmentCanceled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case AppointmentCompleted, AppointmentCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}
