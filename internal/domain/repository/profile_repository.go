package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository answers cross-kind questions over the whole profile
// collection. Account and photo references must be unique across doctors,
// patients and receptionists together, which a per-table index cannot
// express; callers probe here inside the mutating unit of work.
type ProfileRepository interface {
	IsAccountIDTaken(db *gorm.DB, accountID uuid.UUID, excludeID uuid.UUID) (bool, error)
	IsPhotoIDTaken(db *gorm.DB, photoID uuid.UUID, excludeID uuid.UUID) (bool, error)
}
