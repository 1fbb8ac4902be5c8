package usecase

import (
	"errors"

	"clinic-profiles-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrReceptionistNotFound = errors.New("receptionist not found")

	// Account and photo references are unique across all profile kinds.
	ErrAccountIDConflict = errors.New("account reference already linked to another profile")
	ErrPhotoIDConflict   = errors.New("photo reference already assigned to another profile")
)

// checkProfileReferences probes cross-kind uniqueness of the optional
// account and photo references inside the mutating unit of work. excludeID
// lets a record keep its own references on update.
func checkProfileReferences(tx *gorm.DB, profileRepo repository.ProfileRepository, accountID, photoID *uuid.UUID, excludeID uuid.UUID) error {
	if accountID != nil {
		taken, err := profileRepo.IsAccountIDTaken(tx, *accountID, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrAccountIDConflict
		}
	}

	if photoID != nil {
		taken, err := profileRepo.IsPhotoIDTaken(tx, *photoID, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrPhotoIDConflict
		}
	}

	return nil
}
