package converter

import (
	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
)

// ReceptionistCreateRequestToEntity maps a validated creation request to a
// new Receptionist entity. The caller assigns the id.
func ReceptionistCreateRequestToEntity(req *dto.ReceptionistCreateRequest) *entity.Receptionist {
	return &entity.Receptionist{
		Profile: entity.Profile{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			MiddleName: req.MiddleName,
			AccountID:  req.AccountID,
			PhotoID:    req.PhotoID,
		},
		OfficeID: req.OfficeID,
	}
}

// ApplyReceptionistUpdate copies the updatable fields from a validated
// update request onto a loaded receptionist.
func ApplyReceptionistUpdate(receptionist *entity.Receptionist, req *dto.ReceptionistUpdateRequest) {
	receptionist.FirstName = req.FirstName
	receptionist.LastName = req.LastName
	receptionist.MiddleName = req.MiddleName
	receptionist.PhotoID = req.PhotoID
	receptionist.OfficeID = req.OfficeID
}

// ReceptionistToResponse converts a Receptionist entity to its response DTO
func ReceptionistToResponse(receptionist *entity.Receptionist) *dto.ReceptionistResponse {
	if receptionist == nil {
		return nil
	}

	return &dto.ReceptionistResponse{
		ID:         receptionist.ID,
		FirstName:  receptionist.FirstName,
		LastName:   receptionist.LastName,
		MiddleName: receptionist.MiddleName,
		AccountID:  receptionist.AccountID,
		PhotoID:    receptionist.PhotoID,
		OfficeID:   receptionist.OfficeID,
	}
}

// ReceptionistsToResponses converts a slice of Receptionist entities to response DTOs
func ReceptionistsToResponses(receptionists []entity.Receptionist) []dto.ReceptionistResponse {
	responses := make([]dto.ReceptionistResponse, len(receptionists))
	for i := range receptionists {
		responses[i] = *ReceptionistToResponse(&receptionists[i])
	}
	return responses
}
