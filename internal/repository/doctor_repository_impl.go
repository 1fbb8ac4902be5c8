package repository

import (
	"errors"

	"clinic-profiles-service/internal/domain/entity"
	domainRepo "clinic-profiles-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

// FindByID returns (nil, nil) when no doctor matches; translating that into
// a user-facing error is the caller's responsibility.
func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByOfficeID(db *gorm.DB, officeID uuid.UUID) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("office_id = ?", officeID).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecializationID(db *gorm.DB, specializationID uuid.UUID) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("specialization_id = ?", specializationID).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
