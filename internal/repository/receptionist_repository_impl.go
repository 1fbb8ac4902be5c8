package repository

import (
	"errors"

	"clinic-profiles-service/internal/domain/entity"
	domainRepo "clinic-profiles-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receptionistRepository struct{}

func NewReceptionistRepository() domainRepo.ReceptionistRepository {
	return &receptionistRepository{}
}

func (r *receptionistRepository) Create(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Create(receptionist).Error
}

func (r *receptionistRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Receptionist, error) {
	var receptionist entity.Receptionist
	err := db.Where("id = ?", id).First(&receptionist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receptionist, nil
}

func (r *receptionistRepository) FindAll(db *gorm.DB) ([]entity.Receptionist, error) {
	var receptionists []entity.Receptionist
	err := db.Find(&receptionists).Error
	if err != nil {
		return nil, err
	}
	return receptionists, nil
}

func (r *receptionistRepository) Update(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Save(receptionist).Error
}

func (r *receptionistRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Receptionist{})
	return result.RowsAffected, result.Error
}
