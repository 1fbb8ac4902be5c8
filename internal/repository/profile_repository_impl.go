package repository

import (
	"clinic-profiles-service/internal/domain/entity"
	domainRepo "clinic-profiles-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) IsAccountIDTaken(db *gorm.DB, accountID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	return r.referenceTaken(db, "account_id", accountID, excludeID)
}

func (r *profileRepository) IsPhotoIDTaken(db *gorm.DB, photoID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	return r.referenceTaken(db, "photo_id", photoID, excludeID)
}

// referenceTaken scans all three profile tables; excludeID lets an update
// keep its own reference without tripping the check.
func (r *profileRepository) referenceTaken(db *gorm.DB, column string, value uuid.UUID, excludeID uuid.UUID) (bool, error) {
	models := []interface{}{&entity.Doctor{}, &entity.Patient{}, &entity.Receptionist{}}
	for _, model := range models {
		var count int64
		err := db.Model(model).
			Where(column+" = ? AND id <> ?", value, excludeID).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
