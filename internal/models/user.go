package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name           string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	Specialization string
	Hospital       string
	Contact        string
	PasswordHash   string `gorm:"not null"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
