package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every 30 minutes to check for appointments in the next hour
	_, err := c.AddFunc("*/30 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for upcoming appointments and mails the patient
func sendAppointmentReminders() {
	now := time.Now()
	startWindow := now
	endWindow := now.Add(time.Hour)

	var appointments []models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").Preload("Schedule").
		Joins("JOIN schedules ON schedules.id = appointments.schedule_id").
		Where("appointments.status = ? AND schedules.start_date_and_time BETWEEN ? AND ?",
			models.AppointmentScheduled, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Patient == nil || appointment.Schedule == nil {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.ID, appointment.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	doctorName := ""
	if appointment.Doctor != nil {
		doctorName = appointment.Doctor.Name
	}

	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Video Calling ID:</strong> %s</li>
		</ul>
		<p>Please join on time. If you need to cancel, contact us as soon as possible.</p>
	`, appointment.Patient.Name, doctorName,
		appointment.Schedule.StartDateAndTime.Format("2006-01-02 15:04:05"),
		appointment.Schedule.EndDateAndTime.Format("2006-01-02 15:04:05"),
		appointment.VideoCallingID)

	return utils.SendEmail(appointment.Patient.Email, subject, body)
}
