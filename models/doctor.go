package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type Doctor struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name"`
	Email               string    `json:"email" gorm:"unique;not null"`
	ProfilePhoto        string    `json:"profilePhoto"`
	ContactNumber       string    `json:"contactNumber"`
	Address             string    `json:"address"`
	RegistrationNumber  string    `json:"registrationNumber"`
	Experience          int       `json:"experience" gorm:"default:0"`
	Gender              Gender    `json:"gender"`
	AppointmentFee      float64   `json:"appointmentFee"`
	Qualification       string    `json:"qualification"`
	CurrentWorkingPlace string    `json:"currentWorkingPlace"`
	Designation         string    `json:"designation"`
	AverageRating       float64   `json:"averageRating" gorm:"default:0"`
	IsDeleted           bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	DoctorSpecialities []DoctorSpecialities `json:"doctorSpecialities,omitempty" gorm:"foreignKey:DoctorID"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type Speciality struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"not null"`
	Icon  string `json:"icon"`
}

func (s *Speciality) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (Speciality) TableName() string {
	return "specialities"
}

// DoctorSpecialities joins doctors to specialities; composite primary key.
type DoctorSpecialities struct {
	SpecialitiesID string      `json:"specialitiesId" gorm:"primaryKey"`
	DoctorID       string      `json:"doctorId" gorm:"primaryKey"`
	Specialities   *Speciality `json:"specialities,omitempty" gorm:"foreignKey:SpecialitiesID"`
}

func (DoctorSpecialities) TableName() string {
	return "doctor_specialities"
}
