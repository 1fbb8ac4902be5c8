package repository

import (
	"clinic-profiles-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByOfficeID(db *gorm.DB, officeID uuid.UUID) ([]entity.Doctor, error)
	FindBySpecializationID(db *gorm.DB, specializationID uuid.UUID) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
