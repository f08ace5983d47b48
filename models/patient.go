package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodGroup string

const (
	BloodAPositive  BloodGroup = "A_POSITIVE"
	BloodANegative  BloodGroup = "A_NEGATIVE"
	BloodBPositive  BloodGroup = "B_POSITIVE"
	BloodBNegative  BloodGroup = "B_NEGATIVE"
	BloodABPositive BloodGroup = "AB_POSITIVE"
	BloodABNegative BloodGroup = "AB_NEGATIVE"
	BloodOPositive  BloodGroup = "O_POSITIVE"
	BloodONegative  BloodGroup = "O_NEGATIVE"
)

type MaritalStatus string

const (
	Married   MaritalStatus = "MARRIED"
	Unmarried MaritalStatus = "UNMARRIED"
)

type Patient struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"unique;not null"`
	ProfilePhoto  string    `json:"profilePhoto"`
	ContactNumber string    `json:"contactNumber"`
	Address       string    `json:"address"`
	IsDeleted     bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	PatientHealthData *PatientHealthData `json:"patientHealthData,omitempty" gorm:"foreignKey:PatientID"`
	MedicalReports    []MedicalReport    `json:"medicalReports,omitempty" gorm:"foreignKey:PatientID"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PatientHealthData is the one-to-one health record for a patient.
type PatientHealthData struct {
	ID                  string        `json:"id" gorm:"primaryKey"`
	PatientID           string        `json:"patientId" gorm:"unique;not null"`
	DateOfBirth         string        `json:"dateOfBirth"`
	Gender              Gender        `json:"gender"`
	BloodGroup          BloodGroup    `json:"bloodGroup"`
	HasAllergies        bool          `json:"hasAllergies" gorm:"default:false"`
	HasDiabetes         bool          `json:"hasDiabetes" gorm:"default:false"`
	Height              string        `json:"height"`
	Weight              string        `json:"weight"`
	SmokingStatus       bool          `json:"smokingStatus" gorm:"default:false"`
	DietaryPreferences  string        `json:"dietaryPreferences"`
	PregnancyStatus     bool          `json:"pregnancyStatus" gorm:"default:false"`
	MentalHealthHistory string        `json:"mentalHealthHistory"`
	ImmunizationStatus  string        `json:"immunizationStatus"`
	HasPastSurgeries    bool          `json:"hasPastSurgeries" gorm:"default:false"`
	RecentAnxiety       bool          `json:"recentAnxiety" gorm:"default:false"`
	RecentDepression    bool          `json:"recentDepression" gorm:"default:false"`
	MaritalStatus       MaritalStatus `json:"maritalStatus" gorm:"default:UNMARRIED"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

func (h *PatientHealthData) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

type MedicalReport struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	PatientID  string    `json:"patientId" gorm:"not null"`
	ReportName string    `json:"reportName"`
	ReportLink string    `json:"reportLink"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *MedicalReport) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
