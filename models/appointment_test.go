package models

import "testing"

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to in progress", AppointmentScheduled, AppointmentInProgress, true},
		{"scheduled to canceled", AppointmentScheduled, AppointmentCanceled, true},
		{"scheduled to completed", AppointmentScheduled, AppointmentCompleted, false},
		{"in progress to completed", AppointmentInProgress, AppointmentCompleted, true},
		{"in progress to canceled", AppointmentInProgress, AppointmentCanceled, true},
		{"in progress to scheduled", AppointmentInProgress, AppointmentScheduled, false},
		{"completed is terminal", AppointmentCompleted, AppointmentInProgress, false},
		{"canceled is terminal", AppointmentCanceled, AppointmentScheduled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Appointment{Status: tc.from}
			err := a.CanTransitionTo(tc.to)
			if tc.allowed && err != nil {
				t.Errorf("expected transition %s -> %s to be allowed, got %v", tc.from, tc.to, err)
			}
			if !tc.allowed && err == nil {
				t.Errorf("expected transition %s -> %s to be rejected", tc.from, tc.to)
			}
		})
	}
}
