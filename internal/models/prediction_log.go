package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PredictionLog records every adapter invocation for auditing. Input holds
// the ordered 12-feature vector exactly as it was handed to the model.
type PredictionLog struct {
	gorm.Model

	DoctorID  uint           `gorm:"not null;index"`
	PatientID uint           `gorm:"not null;index"`
	Input     datatypes.JSON `gorm:"type:jsonb"`
	Output    string         `gorm:"not null"`

	// Relationships
	Doctor  User    `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
