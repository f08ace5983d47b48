package db

import (
	"fmt"
	"log"

	"github.com/phealthcare/healthcare-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Doctor{},
		&models.Patient{},
		&models.PatientHealthData{},
		&models.MedicalReport{},
		&models.Speciality{},
		&models.DoctorSpecialities{},
		&models.Schedule{},
		&models.DoctorSchedules{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
