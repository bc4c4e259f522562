package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateDoctorDuplicateEmail(t *testing.T) {
	r, gdb := newTestServer(t)

	createDoctor(t, r, "ana@clinic.test")

	rec := doJSON(t, r, http.MethodPost, "/doctors/", gin.H{
		"full_name": "Dr. Ana Clone",
		"email":     "ana@clinic.test",
		"user_id":   2,
	}, nil)
	wantStatus(t, rec, http.StatusBadRequest)

	var body struct {
		Message string `json:"message"`
	}
	decode(t, rec, &body)
	if body.Message != "Email already registered" {
		t.Errorf("message = %q", body.Message)
	}

	var count int64
	gdb.Table("doctors").Count(&count)
	if count != 1 {
		t.Errorf("doctor rows = %d, want 1", count)
	}
}

func TestCreateDoctorRequiresUserID(t *testing.T) {
	r, gdb := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/doctors/", gin.H{
		"full_name": "Dr. Ana Souza",
		"email":     "ana@clinic.test",
	}, nil)
	wantStatus(t, rec, http.StatusBadRequest)

	var count int64
	gdb.Table("doctors").Count(&count)
	if count != 0 {
		t.Errorf("doctor rows = %d, want 0", count)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/doctors/42", nil, nil)
	wantStatus(t, rec, http.StatusNotFound)
}

func TestGetDoctorWithNestedRecords(t *testing.T) {
	r, _ := newTestServer(t)

	doctorID := createDoctor(t, r, "ana@clinic.test")
	base := fmt.Sprintf("/doctors/%d", doctorID)

	rec := doJSON(t, r, http.MethodPost, base+"/offices/", gin.H{
		"name":    "Downtown",
		"address": "1 Main St",
	}, nil)
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, r, http.MethodPost, base+"/schedules/", gin.H{
		"day_of_week": "MONDAY",
		"start_time":  "09:00",
		"end_time":    "17:00",
	}, nil)
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, r, http.MethodPost, base+"/appointment_types/", gin.H{
		"name":             "Consultation",
		"duration_minutes": 30,
	}, nil)
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, r, http.MethodGet, base, nil, nil)
	wantStatus(t, rec, http.StatusOK)

	var doctor struct {
		Email   string `json:"email"`
		Offices []struct {
			Name string `json:"name"`
		} `json:"offices"`
		Schedule []struct {
			DayOfWeek string `json:"day_of_week"`
		} `json:"schedule"`
		AppointmentTypes []struct {
			DurationMinutes int `json:"duration_minutes"`
		} `json:"appointment_types"`
	}
	decode(t, rec, &doctor)

	if len(doctor.Offices) != 1 || doctor.Offices[0].Name != "Downtown" {
		t.Errorf("offices = %+v", doctor.Offices)
	}
	if len(doctor.Schedule) != 1 || doctor.Schedule[0].DayOfWeek != "MONDAY" {
		t.Errorf("schedule = %+v", doctor.Schedule)
	}
	if len(doctor.AppointmentTypes) != 1 || doctor.AppointmentTypes[0].DurationMinutes != 30 {
		t.Errorf("appointment_types = %+v", doctor.AppointmentTypes)
	}
}

func TestNestedCreatesRequireDoctor(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name string
		path string
		body gin.H
	}{
		{"office", "/doctors/42/offices/", gin.H{"name": "Downtown", "address": "1 Main St"}},
		{"schedule", "/doctors/42/schedules/", gin.H{"day_of_week": "MONDAY", "start_time": "09:00", "end_time": "17:00"}},
		{"appointment type", "/doctors/42/appointment_types/", gin.H{"name": "Consultation", "duration_minutes": 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, tt.path, tt.body, nil)
			wantStatus(t, rec, http.StatusNotFound)
		})
	}
}

func TestCreateScheduleRejectsUnknownDay(t *testing.T) {
	r, _ := newTestServer(t)

	doctorID := createDoctor(t, r, "ana@clinic.test")

	rec := doJSON(t, r, http.MethodPost, fmt.Sprintf("/doctors/%d/schedules/", doctorID), gin.H{
		"day_of_week": "FUNDAY",
		"start_time":  "09:00",
		"end_time":    "17:00",
	}, nil)
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	createPatient(t, r, "bruno@patients.test")

	rec := doJSON(t, r, http.MethodPost, "/patients/", gin.H{
		"full_name": "Bruno Clone",
		"email":     "bruno@patients.test",
	}, nil)
	wantStatus(t, rec, http.StatusBadRequest)

	var body struct {
		Message string `json:"message"`
	}
	decode(t, rec, &body)
	if body.Message != "Email already registered" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestGetPatient(t *testing.T) {
	r, _ := newTestServer(t)

	patientID := createPatient(t, r, "bruno@patients.test")

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/patients/%d", patientID), nil, nil)
	wantStatus(t, rec, http.StatusOK)

	var patient struct {
		FullName string `json:"full_name"`
	}
	decode(t, rec, &patient)
	if patient.FullName != "Bruno Lima" {
		t.Errorf("full_name = %q", patient.FullName)
	}

	rec = doJSON(t, r, http.MethodGet, "/patients/999", nil, nil)
	wantStatus(t, rec, http.StatusNotFound)
}
