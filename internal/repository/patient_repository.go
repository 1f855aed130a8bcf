package repository

import (
	"github.com/cardiotrack/cardiotrack/internal/models"
	"gorm.io/gorm"
)

// PatientRepository is the data access interface for patient records.
// Listing is always ownership-filtered; cross-doctor visibility is never
// offered at this layer.
type PatientRepository interface {
	Create(patient *models.Patient) error
	FindByID(id uint) (*models.Patient, error)
	ListForDoctor(doctorID uint) ([]models.Patient, error)
	CountForDoctor(doctorID uint) (int64, error)
	Delete(patient *models.Patient) error
	CreateLog(log *models.PredictionLog) error
}

type PatientRepositoryImpl struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &PatientRepositoryImpl{db: db}
}

func (r *PatientRepositoryImpl) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *PatientRepositoryImpl) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepositoryImpl) ListForDoctor(doctorID uint) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Where("doctor_id = ?", doctorID).Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepositoryImpl) CountForDoctor(doctorID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Patient{}).Where("doctor_id = ?", doctorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PatientRepositoryImpl) Delete(patient *models.Patient) error {
	return r.db.Delete(patient).Error
}

func (r *PatientRepositoryImpl) CreateLog(log *models.PredictionLog) error {
	return r.db.Create(log).Error
}
