package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
