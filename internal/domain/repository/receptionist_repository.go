package repository

import (
	"clinic-profiles-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceptionistRepository interface {
	Create(db *gorm.DB, receptionist *entity.Receptionist) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Receptionist, error)
	FindAll(db *gorm.DB) ([]entity.Receptionist, error)
	Update(db *gorm.DB, receptionist *entity.Receptionist) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
