package models

import "time"

type Schedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `json:"doctor_id"`

	// one of the seven booking.DayOfWeek values
	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`

	// HH:MM, local to the office
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
