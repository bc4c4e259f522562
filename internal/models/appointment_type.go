package models

import "time"

type AppointmentType struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `json:"doctor_id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	DurationMinutes int    `json:"duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
