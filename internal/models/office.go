package models

import "time"

type Office struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `json:"doctor_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
