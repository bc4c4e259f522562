package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	DoctorID uint   `gorm:"index" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	OfficeID uint   `json:"office_id"`
	Office   Office `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentTypeID uint            `json:"appointment_type_id"`
	AppointmentType   AppointmentType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
