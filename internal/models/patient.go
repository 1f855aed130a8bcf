package models

import "gorm.io/gorm"

// Patient is created once on a prediction submission and never updated.
// Field names follow the clinical intake form.
type Patient struct {
	gorm.Model

	DoctorID uint   `gorm:"not null;index"` // Foreign key to the owning User
	Name     string `gorm:"not null"`
	Age      int    `gorm:"not null"`

	Gender            int     `gorm:"not null"`
	Chestpain         int     `gorm:"not null"`
	RestingBP         int     `gorm:"not null"`
	Serumcholestrol   int     `gorm:"not null"`
	Fastingbloodsugar int     `gorm:"not null"`
	Restingrelectro   int     `gorm:"not null"`
	Maxheartrat       int     `gorm:"not null"`
	Exerciseangia     int     `gorm:"not null"`
	Oldpeak           float64 `gorm:"not null"`
	Slope             int     `gorm:"not null"`
	Noofmajor         int     `gorm:"not null"`

	// Computed by the prediction adapter at creation time, never client-set.
	Prediction string `gorm:"not null"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
