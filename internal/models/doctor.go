package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName       string `gorm:"size:100;not null" json:"full_name"`
	Title          string `gorm:"size:100" json:"title"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone          string `gorm:"size:20" json:"phone"`
	WhatsappNumber string `gorm:"size:20" json:"whatsapp_number"`
	PhotoURL       string `gorm:"size:255" json:"photo_url,omitempty"`

	UserID uint `json:"user_id"`

	Offices          []Office          `gorm:"foreignKey:DoctorID" json:"offices"`
	Schedule         []Schedule        `gorm:"foreignKey:DoctorID" json:"schedule"`
	AppointmentTypes []AppointmentType `gorm:"foreignKey:DoctorID" json:"appointment_types"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
